package confirm_payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// parseMetadata разбирает метаданные, записанные при создании checkout-сессии
func parseMetadata(md map[string]string) (*bookingMetadata, error) {
	serviceID, err := uuid.Parse(md[domain.MetadataServiceID])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, domain.MetadataServiceID, err)
	}

	shopID, err := uuid.Parse(md[domain.MetadataShopID])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, domain.MetadataShopID, err)
	}

	userID := md[domain.MetadataUserID]
	if userID == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalidMetadata, domain.MetadataUserID)
	}

	scheduledAt, err := time.Parse(time.RFC3339, md[domain.MetadataDate])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, domain.MetadataDate, err)
	}

	return &bookingMetadata{
		ServiceID:   serviceID,
		ShopID:      shopID,
		UserID:      userID,
		ScheduledAt: domain.NormalizeScheduledAt(scheduledAt),
	}, nil
}
