package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const initialDriverRating = 5.0

type DriverService struct {
	repo   ports.DriverRepo
	logger logger.Logger
}

func NewDriverService(repo ports.DriverRepo, logger logger.Logger) *DriverService {
	return &DriverService{repo: repo, logger: logger}
}

// Register заводит курьера: учётку в роли DRIVER и профиль с нулевыми
// счётчиками. Счётчики дальше двигает только завершение доставки.
func (s *DriverService) Register(ctx context.Context, input domain.RegisterDriverInput) (*domain.Driver, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.VehicleType.Valid() {
		return nil, fmt.Errorf("%w: vehicle_type must be one of bike, electric-bike, scooter, car", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         domain.RoleDriver,
		CreatedAt:    now,
	}
	driver := &domain.Driver{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Name:         input.Name,
		Phone:        input.Phone,
		VehicleType:  input.VehicleType,
		VehicleModel: input.VehicleModel,
		LicensePlate: input.LicensePlate,
		Rating:       initialDriverRating,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user, driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	s.logger.Info("driver registered",
		logger.String("driver_id", driver.ID),
		logger.String("vehicle_type", string(driver.VehicleType)),
	)

	return driver, nil
}

func (s *DriverService) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DriverService) List(ctx context.Context, f domain.DriverFilter) ([]*domain.Driver, error) {
	return s.repo.List(ctx, f)
}

func (s *DriverService) SetOnline(ctx context.Context, id string, online bool) error {
	if err := s.repo.SetOnline(ctx, id, online); err != nil {
		return fmt.Errorf("set online: %w", err)
	}

	s.logger.Info("driver presence changed",
		logger.String("driver_id", id),
		logger.Any("online", online),
	)

	return nil
}

func (s *DriverService) UpdateLocation(ctx context.Context, id string, lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	if err := s.repo.UpdateLocation(ctx, id, lat, lon); err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}
