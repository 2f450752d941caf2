package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	shopRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-BarberBooking/internal/service/shops/models"
)

// Service сервис каталога барбершопов
type Service struct {
	shopRepo     ShopRepository
	popularLimit uint64
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// popularLimit - количество барбершопов в подборке популярных
func NewService(shopRepo ShopRepository, popularLimit int, logger Logger) *Service {
	if popularLimit <= 0 {
		popularLimit = 10
	}

	return &Service{
		shopRepo:     shopRepo,
		popularLimit: uint64(popularLimit),
		logger:       logger,
	}
}

// List возвращает все барбершопы
func (s *Service) List(ctx context.Context) ([]models.ShopResponse, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShops(shops), nil
}

// ListPopular возвращает подборку популярных барбершопов
func (s *Service) ListPopular(ctx context.Context) ([]models.ShopResponse, error) {
	shops, err := s.shopRepo.ListPopular(ctx, s.popularLimit)
	if err != nil {
		s.logger.Error("ListPopular: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPopular - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShops(shops), nil
}

// Search ищет барбершопы, предлагающие услугу с похожим названием
func (s *Service) Search(ctx context.Context, serviceName string) ([]models.ShopResponse, error) {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	shops, err := s.shopRepo.SearchByServiceName(ctx, serviceName)
	if err != nil {
		s.logger.Error("Search: repository error for service=%q: %v", serviceName, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: service=%q matched %d shops", serviceName, len(shops))

	return models.FromDomainShops(shops), nil
}

// GetByID возвращает барбершоп с перечнем услуг
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ShopDetailsResponse, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("GetByID: shop id=%s not found", id)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetByID: repository error for shop id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	services, err := s.shopRepo.ListServices(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list services for shop id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list services: %v", ErrInternal, err)
	}

	resp := &models.ShopDetailsResponse{
		ShopResponse: models.FromDomainShop(shop),
		Services:     make([]models.ServiceResponse, 0, len(services)),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, models.FromDomainService(svc))
	}

	return resp, nil
}
