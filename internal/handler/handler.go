package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.BookingDetails, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	Accept(ctx context.Context, bookingID, driverID string) (*domain.Booking, error)
	MarkPickedUp(ctx context.Context, bookingID string) (*domain.Booking, error)
	MarkDelivered(ctx context.Context, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	BaggageTag(ctx context.Context, bookingID string) (string, error)
}

type UserSvc interface {
	Signup(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type DriverSvc interface {
	Register(ctx context.Context, input domain.RegisterDriverInput) (*domain.Driver, error)
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context, f domain.DriverFilter) ([]*domain.Driver, error)
	SetOnline(ctx context.Context, id string, online bool) error
	UpdateLocation(ctx context.Context, id string, lat, lon float64) error
}

type Handler struct {
	bookingService BookingSvc
	userService    UserSvc
	driverService  DriverSvc
}

func NewHandler(bookingService BookingSvc, userService UserSvc, driverService DriverSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		userService:    userService,
		driverService:  driverService,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Signup(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pickupTime, err := time.Parse(time.RFC3339, req.PickupTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid pickup_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Pickup:        domain.Point{Label: req.Pickup.Label, Lat: *req.Pickup.Lat, Lon: *req.Pickup.Lon},
		Delivery:      domain.Point{Label: req.Delivery.Label, Lat: *req.Delivery.Lat, Lon: *req.Delivery.Lon},
		BaggageSize:   domain.BaggageSize(strings.ToUpper(req.BaggageSize)),
		BaggageCount:  req.BaggageCount,
		PickupTime:    pickupTime,
		Instructions:  req.Instructions,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{
		CustomerID: c.Query("customer_id"),
		DriverID:   c.Query("driver_id"),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.BookingStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Accept(c.Request.Context(), id, req.DriverID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PickupBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.MarkPickedUp)
}

func (h *Handler) DeliverBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.MarkDelivered)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Cancel)
}

func (h *Handler) transition(c *ginext.Context, op func(context.Context, string) (*domain.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := op(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) BaggageTag(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	tag, err := h.bookingService.BaggageTag(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TagResponse{BookingID: id, QRCode: tag})
}

// Drivers

func (h *Handler) RegisterDriver(c *ginext.Context) {
	var req dto.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterDriverInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Phone:        req.Phone,
		VehicleType:  domain.VehicleType(strings.ToLower(req.VehicleType)),
		VehicleModel: req.VehicleModel,
		LicensePlate: req.LicensePlate,
	}

	driver, err := h.driverService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDriverResponse(driver))
}

func (h *Handler) GetDriver(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid driver id"})
		return
	}

	driver, err := h.driverService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDriverResponse(driver))
}

func (h *Handler) ListDrivers(c *ginext.Context) {
	filter := domain.DriverFilter{OnlineOnly: c.Query("online") == "true"}

	drivers, err := h.driverService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		resp = append(resp, dto.ToDriverResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DriverOnline(c *ginext.Context) {
	h.presence(c, true)
}

func (h *Handler) DriverOffline(c *ginext.Context) {
	h.presence(c, false)
}

func (h *Handler) presence(c *ginext.Context, online bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid driver id"})
		return
	}

	if err := h.driverService.SetOnline(c.Request.Context(), id, online); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"online": online})
}

func (h *Handler) DriverLocation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid driver id"})
		return
	}

	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.driverService.UpdateLocation(c.Request.Context(), id, *req.Lat, *req.Lon); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Users

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), domain.BookingFilter{CustomerID: userID})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDriverNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDriverNotVerified):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
