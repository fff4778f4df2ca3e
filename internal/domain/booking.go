package domain

import "time"

type BookingStatus string

const (
	BookingStatusAwaitingDriver BookingStatus = "AWAITING_DRIVER"
	BookingStatusAccepted       BookingStatus = "ACCEPTED"
	BookingStatusPickedUp       BookingStatus = "PICKED_UP"
	BookingStatusDelivered      BookingStatus = "DELIVERED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
)

// OpenStatuses — статусы, из которых бронь ещё можно отменить.
var OpenStatuses = []BookingStatus{
	BookingStatusAwaitingDriver,
	BookingStatusAccepted,
	BookingStatusPickedUp,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusAwaitingDriver, BookingStatusAccepted,
		BookingStatusPickedUp, BookingStatusDelivered, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusDelivered || s == BookingStatusCancelled
}

type BaggageSize string

const (
	BaggageSizeSmall  BaggageSize = "SMALL"
	BaggageSizeMedium BaggageSize = "MEDIUM"
	BaggageSizeLarge  BaggageSize = "LARGE"
	BaggageSizeXLarge BaggageSize = "XLARGE"
)

func (s BaggageSize) Valid() bool {
	switch s {
	case BaggageSizeSmall, BaggageSizeMedium, BaggageSizeLarge, BaggageSizeXLarge:
		return true
	}
	return false
}

// Point — точка забора или доставки: подпись из формы плюс координаты.
type Point struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type Booking struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Pickup        Point       `json:"pickup"`
	Delivery      Point       `json:"delivery"`
	BaggageSize   BaggageSize `json:"baggage_size"`
	BaggageCount  int         `json:"baggage_count"`
	PickupTime    time.Time   `json:"pickup_time"`
	Instructions  string      `json:"instructions,omitempty"`

	// Денежные поля считаются один раз при создании и больше не меняются.
	PriceCents          int64 `json:"price_cents"`
	CommissionCents     int64 `json:"commission_cents"`
	DriverEarningsCents int64 `json:"driver_earnings_cents"`

	Status      BookingStatus `json:"status"`
	DriverID    *string       `json:"driver_id,omitempty"`
	AcceptedAt  *time.Time    `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time    `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time    `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDetails — бронь вместе со сводками клиента и курьера.
type BookingDetails struct {
	Booking  Booking        `json:"booking"`
	Customer *UserSummary   `json:"customer,omitempty"`
	Driver   *DriverSummary `json:"driver,omitempty"`
	Payment  *Payment       `json:"payment,omitempty"`
}

type CreateBookingInput struct {
	CustomerID    string // пустой — клиент создаётся на лету по имени и телефону
	CustomerName  string
	CustomerPhone string
	Pickup        Point
	Delivery      Point
	BaggageSize   BaggageSize
	BaggageCount  int
	PickupTime    time.Time
	Instructions  string
}

// BookingFilter — необязательные предикаты для выборки броней.
type BookingFilter struct {
	CustomerID string
	DriverID   string
	Statuses   []BookingStatus
}
