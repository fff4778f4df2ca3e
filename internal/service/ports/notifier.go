package ports

import (
	"context"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingAccepted(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingPickedUp(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingDelivered(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking)
}
