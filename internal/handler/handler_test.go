package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/handler/dto"
	hmocks "github.com/Alexandre-Machu/BagExpress/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockUserSvc, *hmocks.MockDriverSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	driverSvc := hmocks.NewMockDriverSvc(t)

	h := NewHandler(bookingSvc, userSvc, driverSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/accept", h.AcceptBooking)
		api.POST("/bookings/:id/pickup", h.PickupBooking)
		api.POST("/bookings/:id/deliver", h.DeliverBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/tag", h.BaggageTag)
		api.POST("/drivers", h.RegisterDriver)
		api.GET("/drivers", h.ListDrivers)
		api.GET("/drivers/:id", h.GetDriver)
		api.POST("/drivers/:id/online", h.DriverOnline)
		api.POST("/drivers/:id/offline", h.DriverOffline)
		api.POST("/drivers/:id/location", h.DriverLocation)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return bookingSvc, userSvc, driverSvc, r
}

func f64(v float64) *float64 { return &v }

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:                  uuid.New().String(),
		CustomerID:          uuid.New().String(),
		CustomerName:        "John Client",
		Pickup:              domain.Point{Label: "Gare de Lyon", Lat: 48.8443, Lon: 2.3744},
		Delivery:            domain.Point{Label: "CDG Terminal 2", Lat: 49.0039, Lon: 2.5710},
		BaggageSize:         domain.BaggageSizeMedium,
		BaggageCount:        2,
		PickupTime:          time.Now().Add(3 * time.Hour),
		PriceCents:          2600,
		CommissionCents:     520,
		DriverEarningsCents: 2080,
		Status:              domain.BookingStatusAwaitingDriver,
		CreatedAt:           time.Now(),
	}
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.SignupRequest{
		Email:    "alice@example.com",
		Password: "longenough",
		Name:     "Alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "CUSTOMER", resp.Role)
}

func TestHandler_Signup_ShortPassword(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"email":"alice@example.com","password":"short","name":"Alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.SignupRequest{
		Email:    "taken@example.com",
		Password: "longenough",
		Name:     "Alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleCustomer, CreatedAt: time.Now()}
	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "s3cret11").Return("signed-jwt", user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "s3cret11"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrongpass").
		Return("", nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrongpass"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()

	var input domain.CreateBookingInput
	bookingSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		input = in
		return true
	})).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CustomerID:   booking.CustomerID,
		Pickup:       dto.PointPayload{Label: "Gare de Lyon", Lat: f64(48.8443), Lon: f64(2.3744)},
		Delivery:     dto.PointPayload{Label: "CDG Terminal 2", Lat: f64(49.0039), Lon: f64(2.5710)},
		BaggageSize:  "medium",
		BaggageCount: 2,
		PickupTime:   time.Now().Add(3 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.BaggageSizeMedium, input.BaggageSize) // lowercase input normalized

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AWAITING_DRIVER", resp.Status)
	assert.Equal(t, "26.00", resp.Price)
	assert.Equal(t, "5.20", resp.Commission)
	assert.Equal(t, "20.80", resp.DriverEarnings)
}

func TestHandler_CreateBooking_ZeroLatitude(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Pickup = domain.Point{Label: "Libreville port", Lat: 0, Lon: 9.4544}

	var input domain.CreateBookingInput
	bookingSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		input = in
		return true
	})).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CustomerID:   booking.CustomerID,
		Pickup:       dto.PointPayload{Label: "Libreville port", Lat: f64(0), Lon: f64(9.4544)},
		Delivery:     dto.PointPayload{Label: "CDG Terminal 2", Lat: f64(49.0039), Lon: f64(2.5710)},
		BaggageSize:  "MEDIUM",
		BaggageCount: 2,
		PickupTime:   time.Now().Add(3 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0.0, input.Pickup.Lat)
}

func TestHandler_CreateBooking_MissingLatitude(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{
		"pickup": {"label":"A","lon":2.3},
		"delivery": {"label":"B","lat":49.0,"lon":2.5},
		"baggage_size": "MEDIUM",
		"baggage_count": 1,
		"pickup_time": "2026-09-01T10:00:00Z"
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadPickupTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{
		"pickup": {"label":"A","lat":48.8,"lon":2.3},
		"delivery": {"label":"B","lat":49.0,"lon":2.5},
		"baggage_size": "MEDIUM",
		"baggage_count": 1,
		"pickup_time": "tomorrow morning"
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_MissingPickup(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"baggage_size":"MEDIUM","baggage_count":1,"pickup_time":"2026-09-01T10:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()
	details := &domain.BookingDetails{
		Booking:  *booking,
		Customer: &domain.UserSummary{ID: booking.CustomerID, Name: "John Client"},
		Payment:  &domain.Payment{ID: "p1", BookingID: booking.ID, AmountCents: 2600, Status: domain.PaymentStatusPending, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().Get(mock.Anything, booking.ID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.Booking.ID)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "26.00", resp.Payment.Amount)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything, domain.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingStatusAwaitingDriver, domain.BookingStatusAccepted},
	}).Return([]*domain.Booking{sampleBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=awaiting_driver,accepted", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_AcceptBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	driverID := uuid.New().String()

	accepted := sampleBooking()
	accepted.ID = bookingID
	accepted.Status = domain.BookingStatusAccepted
	accepted.DriverID = &driverID

	bookingSvc.EXPECT().Accept(mock.Anything, bookingID, driverID).Return(accepted, nil)

	body, _ := json.Marshal(dto.AcceptRequest{DriverID: driverID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/accept", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCEPTED", resp.Status)
	require.NotNil(t, resp.DriverID)
	assert.Equal(t, driverID, *resp.DriverID)
}

func TestHandler_AcceptBooking_AlreadyTaken(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	driverID := uuid.New().String()

	bookingSvc.EXPECT().Accept(mock.Anything, bookingID, driverID).Return(nil, domain.ErrInvalidTransition)

	body, _ := json.Marshal(dto.AcceptRequest{DriverID: driverID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/accept", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AcceptBooking_UnverifiedDriver(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	driverID := uuid.New().String()

	bookingSvc.EXPECT().Accept(mock.Anything, bookingID, driverID).Return(nil, domain.ErrDriverNotVerified)

	body, _ := json.Marshal(dto.AcceptRequest{DriverID: driverID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/accept", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeliverBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	delivered := sampleBooking()
	delivered.ID = bookingID
	delivered.Status = domain.BookingStatusDelivered

	bookingSvc.EXPECT().MarkDelivered(mock.Anything, bookingID).Return(delivered, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/deliver", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DELIVERED", resp.Status)
}

func TestHandler_CancelBooking_Terminal(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BaggageTag_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().BaggageTag(mock.Anything, bookingID).
		Return("data:image/png;base64,iVBOR", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/tag", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TagResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.BookingID)
	assert.Contains(t, resp.QRCode, "data:image/png;base64,")
}

// --- Drivers ---

func TestHandler_RegisterDriver_Success(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	driver := &domain.Driver{
		ID:          uuid.New().String(),
		UserID:      uuid.New().String(),
		Name:        "Paul Coursier",
		VehicleType: domain.VehicleTypeBike,
		Rating:      5.0,
		CreatedAt:   time.Now(),
	}

	var input domain.RegisterDriverInput
	driverSvc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterDriverInput) bool {
		input = in
		return true
	})).Return(driver, nil)

	body, _ := json.Marshal(dto.RegisterDriverRequest{
		Email:       "driver@example.com",
		Password:    "longenough",
		Name:        "Paul Coursier",
		VehicleType: "BIKE",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.VehicleTypeBike, input.VehicleType) // uppercase input normalized

	var resp dto.DriverResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bike", resp.VehicleType)
	assert.Equal(t, 5.0, resp.Rating)
	assert.Equal(t, "0.00", resp.Earnings)
}

func TestHandler_RegisterDriver_UnknownVehicle(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	driverSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.RegisterDriverRequest{
		Email:       "driver@example.com",
		Password:    "longenough",
		Name:        "Paul",
		VehicleType: "tank",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListDrivers_OnlineOnly(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	driverSvc.EXPECT().List(mock.Anything, domain.DriverFilter{OnlineOnly: true}).
		Return([]*domain.Driver{{ID: "d1", IsOnline: true, CreatedAt: time.Now()}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/drivers?online=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.DriverResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_DriverOnline_Success(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	id := uuid.New().String()
	driverSvc.EXPECT().SetOnline(mock.Anything, id, true).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers/"+id+"/online", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DriverOffline_NotFound(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	id := uuid.New().String()
	driverSvc.EXPECT().SetOnline(mock.Anything, id, false).Return(domain.ErrDriverNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers/"+id+"/offline", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DriverLocation_Success(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	id := uuid.New().String()
	driverSvc.EXPECT().UpdateLocation(mock.Anything, id, 48.8566, 2.3522).Return(nil)

	body := []byte(`{"lat":48.8566,"lon":2.3522}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers/"+id+"/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DriverLocation_ZeroLongitude(t *testing.T) {
	_, _, driverSvc, r := setupRouter(t)

	id := uuid.New().String()
	driverSvc.EXPECT().UpdateLocation(mock.Anything, id, 51.4779, 0.0).Return(nil)

	body := []byte(`{"lat":51.4779,"lon":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers/"+id+"/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DriverLocation_OutOfRange(t *testing.T) {
	_, _, _, r := setupRouter(t)

	id := uuid.New().String()
	body := []byte(`{"lat":123.0,"lon":2.35}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers/"+id+"/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_ListUsers_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Email: "alice@example.com", Name: "Alice", Role: domain.RoleCustomer, CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUser_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	userSvc.EXPECT().GetByID(mock.Anything, id).Return(&domain.User{
		ID:        id,
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, string(domain.RoleCustomer), resp.Role)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	userSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUser_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	booking := sampleBooking()
	booking.CustomerID = userID

	bookingSvc.EXPECT().List(mock.Anything, domain.BookingFilter{CustomerID: userID}).
		Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
