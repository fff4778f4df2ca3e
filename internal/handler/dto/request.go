package dto

type SignupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	Role           string `json:"role" binding:"omitempty,oneof=CUSTOMER DRIVER ADMIN"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Координаты — указатели: ноль (экватор, нулевой меридиан) — валидное
// значение, required на нём должен означать «поле пришло», а не «не ноль».
type PointPayload struct {
	Label string   `json:"label" binding:"required"`
	Lat   *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon   *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

type CreateBookingRequest struct {
	CustomerID    string       `json:"customer_id" binding:"omitempty,uuid"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	Pickup        PointPayload `json:"pickup" binding:"required"`
	Delivery      PointPayload `json:"delivery" binding:"required"`
	BaggageSize   string       `json:"baggage_size" binding:"required"`
	BaggageCount  int          `json:"baggage_count" binding:"required,gte=1"`
	PickupTime    string       `json:"pickup_time" binding:"required"`
	Instructions  string       `json:"instructions"`
}

type AcceptRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

type RegisterDriverRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
	VehicleModel string `json:"vehicle_model"`
	LicensePlate string `json:"license_plate"`
}

type LocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}
