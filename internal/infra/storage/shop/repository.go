package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

var shopColumns = []string{
	"s.id",
	"s.name",
	"s.address",
	"s.description",
	"s.image_url",
	"s.phones",
	"s.created_at",
	"s.updated_at",
}

var serviceColumns = []string{
	"id",
	"shop_id",
	"name",
	"description",
	"image_url",
	"price_in_cents",
	"created_at",
	"updated_at",
}

// Repository репозиторий барбершопов и их услуг (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барбершопов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все барбершопы в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Shop, error) {
	return r.listShops(ctx, "List",
		psqlbuilder.Select(shopColumns...).
			From("shops s").
			OrderBy("s.created_at ASC", "s.name ASC"),
	)
}

// ListPopular возвращает подборку популярных барбершопов (по имени в обратном порядке)
func (r *Repository) ListPopular(ctx context.Context, limit uint64) ([]*domain.Shop, error) {
	return r.listShops(ctx, "ListPopular",
		psqlbuilder.Select(shopColumns...).
			From("shops s").
			OrderBy("s.name DESC").
			Limit(limit),
	)
}

// SearchByServiceName возвращает барбершопы, у которых есть услуга с подстрокой в названии
// Поиск регистронезависимый
func (r *Repository) SearchByServiceName(ctx context.Context, serviceName string) ([]*domain.Shop, error) {
	// подзапрос с плейсхолдерами "?", которые заменяет внешний запрос
	exists := squirrel.Select("1").
		From("services sv").
		Where("sv.shop_id = s.id").
		Where(squirrel.ILike{"sv.name": "%" + escapeLike(serviceName) + "%"})

	existsSQL, existsArgs, err := exists.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchByServiceName - build subquery: %v", ErrBuildQuery, err)
	}

	return r.listShops(ctx, "SearchByServiceName",
		psqlbuilder.Select(shopColumns...).
			From("shops s").
			Where(squirrel.Expr("EXISTS ("+existsSQL+")", existsArgs...)).
			OrderBy("s.name ASC"),
	)
}

// GetByID возвращает барбершоп по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From("shops s").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanShop(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shop: %v", ErrScanRow, err)
	}

	return shop, nil
}

// ListServices возвращает услуги барбершопа
func (r *Repository) ListServices(ctx context.Context, shopID uuid.UUID) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetService возвращает услугу по ID
func (r *Repository) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

func (r *Repository) listShops(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return shops, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShop(row scanner) (*domain.Shop, error) {
	var shop domain.Shop
	var phones pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.Description,
		&shop.ImageURL,
		&phones,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	shop.Phones = []string(phones)
	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}

func scanService(row scanner) (*domain.Service, error) {
	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.ShopID,
		&service.Name,
		&service.Description,
		&service.ImageURL,
		&service.PriceInCents,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	var out []rune
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
