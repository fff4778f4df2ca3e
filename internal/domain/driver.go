package domain

import "time"

type VehicleType string

const (
	VehicleTypeBike         VehicleType = "bike"
	VehicleTypeElectricBike VehicleType = "electric-bike"
	VehicleTypeScooter      VehicleType = "scooter"
	VehicleTypeCar          VehicleType = "car"
)

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTypeBike, VehicleTypeElectricBike, VehicleTypeScooter, VehicleTypeCar:
		return true
	}
	return false
}

// Driver — профиль курьера, один к одному с пользователем в роли DRIVER.
// Счётчики totalDeliveries и earnings меняются только репозиторием броней
// в транзакции завершения доставки.
type Driver struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	VehicleType     VehicleType `json:"vehicle_type"`
	VehicleModel    string      `json:"vehicle_model"`
	LicensePlate    string      `json:"license_plate"`
	Rating          float64     `json:"rating"`
	TotalDeliveries int         `json:"total_deliveries"`
	EarningsCents   int64       `json:"earnings_cents"`
	IsVerified      bool        `json:"is_verified"`
	IsOnline        bool        `json:"is_online"`
	Lat             *float64    `json:"lat,omitempty"`
	Lon             *float64    `json:"lon,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type DriverSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	VehicleType VehicleType `json:"vehicle_type"`
	Rating      float64     `json:"rating"`
}

func (d *Driver) Summary() *DriverSummary {
	return &DriverSummary{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: d.VehicleType,
		Rating:      d.Rating,
	}
}

type RegisterDriverInput struct {
	Email        string
	Password     string
	Name         string
	Phone        string
	VehicleType  VehicleType
	VehicleModel string
	LicensePlate string
}

// DriverFilter — необязательные предикаты для выборки курьеров.
type DriverFilter struct {
	OnlineOnly bool
}
