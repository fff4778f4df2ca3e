package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
)

// Payment — учётная запись платежа по брони. Списания в этом ядре нет,
// запись создаётся вместе с бронью в статусе PENDING.
type Payment struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	AmountCents int64         `json:"amount_cents"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
