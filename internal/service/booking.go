package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/service/ports"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const qrTagSize = 256

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	driverRepo  ports.DriverRepo
	notifier    ports.BookingNotifier
	prices      domain.PriceTable
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	driverRepo ports.DriverRepo,
	notifier ports.BookingNotifier,
	prices domain.PriceTable,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		driverRepo:  driverRepo,
		notifier:    notifier,
		prices:      prices,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	customerID := input.CustomerID
	customerName := input.CustomerName
	customerPhone := input.CustomerPhone

	if customerID == "" {
		customer, err := s.materializeCustomer(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("materialize customer: %w", err)
		}
		customerID = customer.ID
	} else {
		customer, err := s.userRepo.GetByID(ctx, customerID)
		if err != nil {
			return nil, fmt.Errorf("check customer: %w", err)
		}
		if customerName == "" {
			customerName = customer.Name
		}
		if customerPhone == "" {
			customerPhone = customer.Phone
		}
	}

	quote := s.prices.Price(input.BaggageSize, input.BaggageCount)
	now := time.Now().UTC()

	booking := &domain.Booking{
		ID:                  uuid.New().String(),
		CustomerID:          customerID,
		CustomerName:        customerName,
		CustomerPhone:       customerPhone,
		Pickup:              input.Pickup,
		Delivery:            input.Delivery,
		BaggageSize:         input.BaggageSize,
		BaggageCount:        input.BaggageCount,
		PickupTime:          input.PickupTime,
		Instructions:        input.Instructions,
		PriceCents:          quote.PriceCents,
		CommissionCents:     quote.CommissionCents,
		DriverEarningsCents: quote.DriverEarningsCents,
		Status:              domain.BookingStatusAwaitingDriver,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	payment := &domain.Payment{
		ID:          uuid.New().String(),
		BookingID:   booking.ID,
		AmountCents: quote.PriceCents,
		Status:      domain.PaymentStatusPending,
		CreatedAt:   now,
	}

	if err := s.bookingRepo.Create(ctx, booking, payment); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("customer_id", customerID),
		logger.String("baggage_size", string(booking.BaggageSize)),
		logger.Int64("price_cents", booking.PriceCents),
	)

	return booking, nil
}

// materializeCustomer заводит клиента на лету из данных формы. Пароля у такой
// учётки нет: в базу уходит хеш случайного значения, войти по нему нельзя.
func (s *BookingService) materializeCustomer(ctx context.Context, input domain.CreateBookingInput) (*domain.User, error) {
	throwaway, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	customer := &domain.User{
		ID:           uuid.New().String(),
		Email:        fmt.Sprintf("guest_%d@bagexpress.local", time.Now().UnixNano()),
		PasswordHash: string(throwaway),
		Name:         input.CustomerName,
		Phone:        input.CustomerPhone,
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.BookingDetails, error) {
	return s.bookingRepo.GetDetails(ctx, id)
}

func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	for _, st := range f.Statuses {
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, st)
		}
	}
	return s.bookingRepo.List(ctx, f)
}

func (s *BookingService) Accept(ctx context.Context, bookingID, driverID string) (*domain.Booking, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("check driver: %w", err)
	}
	if !driver.IsVerified {
		return nil, domain.ErrDriverNotVerified
	}

	booking, err := s.bookingRepo.Accept(ctx, bookingID, driverID)
	if err != nil {
		return nil, fmt.Errorf("accept booking: %w", err)
	}

	s.logger.Info("booking accepted",
		logger.String("booking_id", booking.ID),
		logger.String("driver_id", driverID),
	)
	s.notify(ctx, booking, s.notifier.NotifyBookingAccepted)

	return booking, nil
}

func (s *BookingService) MarkPickedUp(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.MarkPickedUp(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("mark picked up: %w", err)
	}

	s.logger.Info("baggage picked up", logger.String("booking_id", booking.ID))
	s.notify(ctx, booking, s.notifier.NotifyBookingPickedUp)

	return booking, nil
}

func (s *BookingService) MarkDelivered(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.MarkDelivered(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}

	s.logger.Info("baggage delivered",
		logger.String("booking_id", booking.ID),
		logger.Int64("driver_earnings_cents", booking.DriverEarningsCents),
	)
	s.notify(ctx, booking, s.notifier.NotifyBookingDelivered)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled", logger.String("booking_id", booking.ID))
	s.notify(ctx, booking, s.notifier.NotifyBookingCancelled)

	return booking, nil
}

// CancelStale отменяет невостребованные брони с прошедшим временем забора.
// Вызывается планировщиком, не ручным запросом.
func (s *BookingService) CancelStale(ctx context.Context, grace time.Duration) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, grace)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale bookings cancelled", logger.Int("count", len(cancelled)))
		for _, b := range cancelled {
			s.notify(ctx, b, s.notifier.NotifyBookingCancelled)
		}
	}

	return cancelled, nil
}

// BaggageTag — QR-бирка брони: PNG как data URL, внутри JSON с идентификатором.
func (s *BookingService) BaggageTag(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("get booking: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"booking_id": booking.ID,
		"timestamp":  time.Now().UnixMilli(),
		"type":       "baggage-delivery",
	})
	if err != nil {
		return "", fmt.Errorf("marshal tag payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrTagSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (s *BookingService) notify(ctx context.Context, b *domain.Booking, send func(context.Context, *domain.User, *domain.Booking)) {
	user, err := s.userRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
			logger.String("error", err.Error()),
		)
		return
	}

	go send(context.WithoutCancel(ctx), user, b)
}

func validateCreate(input domain.CreateBookingInput) error {
	if input.CustomerID == "" && input.CustomerName == "" {
		return fmt.Errorf("%w: customer_name is required", domain.ErrValidation)
	}
	if input.Pickup.Label == "" {
		return fmt.Errorf("%w: pickup.label is required", domain.ErrValidation)
	}
	if input.Delivery.Label == "" {
		return fmt.Errorf("%w: delivery.label is required", domain.ErrValidation)
	}
	if !input.BaggageSize.Valid() {
		return fmt.Errorf("%w: baggage_size must be one of SMALL, MEDIUM, LARGE, XLARGE", domain.ErrValidation)
	}
	if input.BaggageCount < 1 {
		return fmt.Errorf("%w: baggage_count must be at least 1", domain.ErrValidation)
	}
	if input.PickupTime.IsZero() {
		return fmt.Errorf("%w: pickup_time is required", domain.ErrValidation)
	}
	return nil
}
