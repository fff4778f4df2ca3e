package scheduler

import (
	"context"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleCanceller interface {
	CancelStale(ctx context.Context, grace time.Duration) ([]*domain.Booking, error)
}

// Scheduler периодически отменяет брони, которые так и не взял ни один курьер
// к запрошенному времени забора плюс grace.
type Scheduler struct {
	bookingService staleCanceller
	interval       time.Duration
	grace          time.Duration
	logger         logger.Logger
}

func New(
	bookingService staleCanceller,
	interval time.Duration,
	grace time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		grace:          grace,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("grace", s.grace),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStale(ctx, s.grace)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
		)
	}
}
