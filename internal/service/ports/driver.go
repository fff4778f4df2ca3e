package ports

import (
	"context"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
)

type DriverRepo interface {
	Create(ctx context.Context, user *domain.User, d *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context, f domain.DriverFilter) ([]*domain.Driver, error)
	SetOnline(ctx context.Context, id string, online bool) error
	UpdateLocation(ctx context.Context, id string, lat, lon float64) error
}
