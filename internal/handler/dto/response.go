package dto

import (
	"fmt"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
)

type BookingResponse struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	CustomerName   string        `json:"customer_name"`
	CustomerPhone  string        `json:"customer_phone"`
	Pickup         domain.Point  `json:"pickup"`
	Delivery       domain.Point  `json:"delivery"`
	BaggageSize    string        `json:"baggage_size"`
	BaggageCount   int           `json:"baggage_count"`
	PickupTime     string        `json:"pickup_time"`
	Instructions   string        `json:"instructions,omitempty"`
	Price          string        `json:"price"`
	Commission     string        `json:"commission"`
	DriverEarnings string        `json:"driver_earnings"`
	Status         string        `json:"status"`
	DriverID       *string       `json:"driver_id,omitempty"`
	AcceptedAt     *string       `json:"accepted_at,omitempty"`
	PickedUpAt     *string       `json:"picked_up_at,omitempty"`
	DeliveredAt    *string       `json:"delivered_at,omitempty"`
	CreatedAt      string        `json:"created_at"`
}

type BookingDetailsResponse struct {
	Booking  BookingResponse       `json:"booking"`
	Customer *domain.UserSummary   `json:"customer,omitempty"`
	Driver   *domain.DriverSummary `json:"driver,omitempty"`
	Payment  *PaymentResponse      `json:"payment,omitempty"`
}

type PaymentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type DriverResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	VehicleType     string   `json:"vehicle_type"`
	VehicleModel    string   `json:"vehicle_model"`
	LicensePlate    string   `json:"license_plate"`
	Rating          float64  `json:"rating"`
	TotalDeliveries int      `json:"total_deliveries"`
	Earnings        string   `json:"earnings"`
	IsVerified      bool     `json:"is_verified"`
	IsOnline        bool     `json:"is_online"`
	Lat             *float64 `json:"lat,omitempty"`
	Lon             *float64 `json:"lon,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TagResponse struct {
	BookingID string `json:"booking_id"`
	QRCode    string `json:"qr_code"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// money форматирует центы в строку с двумя знаками, без плавающей точки.
func money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func rfc3339(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		Pickup:         b.Pickup,
		Delivery:       b.Delivery,
		BaggageSize:    string(b.BaggageSize),
		BaggageCount:   b.BaggageCount,
		PickupTime:     b.PickupTime.Format(time.RFC3339),
		Instructions:   b.Instructions,
		Price:          money(b.PriceCents),
		Commission:     money(b.CommissionCents),
		DriverEarnings: money(b.DriverEarningsCents),
		Status:         string(b.Status),
		DriverID:       b.DriverID,
		AcceptedAt:     rfc3339(b.AcceptedAt),
		PickedUpAt:     rfc3339(b.PickedUpAt),
		DeliveredAt:    rfc3339(b.DeliveredAt),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{
		Booking:  ToBookingResponse(&d.Booking),
		Customer: d.Customer,
		Driver:   d.Driver,
	}
	if d.Payment != nil {
		resp.Payment = &PaymentResponse{
			ID:        d.Payment.ID,
			BookingID: d.Payment.BookingID,
			Amount:    money(d.Payment.AmountCents),
			Status:    string(d.Payment.Status),
			CreatedAt: d.Payment.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func ToDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleType:     string(d.VehicleType),
		VehicleModel:    d.VehicleModel,
		LicensePlate:    d.LicensePlate,
		Rating:          d.Rating,
		TotalDeliveries: d.TotalDeliveries,
		Earnings:        money(d.EarningsCents),
		IsVerified:      d.IsVerified,
		IsOnline:        d.IsOnline,
		Lat:             d.Lat,
		Lon:             d.Lon,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
