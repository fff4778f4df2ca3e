package ports

import (
	"context"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	Accept(ctx context.Context, bookingID, driverID string) (*domain.Booking, error)
	MarkPickedUp(ctx context.Context, bookingID string) (*domain.Booking, error)
	MarkDelivered(ctx context.Context, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	CancelStale(ctx context.Context, grace time.Duration) ([]*domain.Booking, error)
}
