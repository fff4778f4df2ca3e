package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const driverColumns = `d.id, d.user_id, u.name, u.phone,
	d.vehicle_type, d.vehicle_model, d.license_plate,
	d.rating, d.total_deliveries, d.earnings_cents,
	d.is_verified, d.is_online, d.lat, d.lon,
	d.created_at, d.updated_at`

type DriverRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDriverRepo(db *dbpg.DB) *DriverRepository {
	return &DriverRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanDriver(row bookingScanner) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(
		&d.ID, &d.UserID, &d.Name, &d.Phone,
		&d.VehicleType, &d.VehicleModel, &d.LicensePlate,
		&d.Rating, &d.TotalDeliveries, &d.EarningsCents,
		&d.IsVerified, &d.IsOnline, &d.Lat, &d.Lon,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create заводит учётку курьера и его профиль в одной транзакции.
func (r *DriverRepository) Create(ctx context.Context, user *domain.User, d *domain.Driver) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	userQuery := `INSERT INTO users (id, email, password_hash, name, phone, role, telegram_chat_id, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, userQuery,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.Phone, user.Role, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert driver user: %w", err)
	}

	query := `INSERT INTO drivers (id, user_id, vehicle_type, vehicle_model, license_plate,
				rating, total_deliveries, earnings_cents,
				is_verified, is_online, lat, lon, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query,
		d.ID, d.UserID, d.VehicleType, d.VehicleModel, d.LicensePlate,
		d.Rating, d.TotalDeliveries, d.EarningsCents,
		d.IsVerified, d.IsOnline, d.Lat, d.Lon, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}

	return tx.Commit()
}

func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + `
			  FROM drivers d
			  JOIN users u ON u.id = d.user_id
			  WHERE d.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	d, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("scan driver: %w", err)
	}

	return d, nil
}

func (r *DriverRepository) List(ctx context.Context, f domain.DriverFilter) ([]*domain.Driver, error) {
	query := `SELECT ` + driverColumns + `
			  FROM drivers d
			  JOIN users u ON u.id = d.user_id`
	if f.OnlineOnly {
		query += ` WHERE d.is_online`
	}
	query += ` ORDER BY d.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *DriverRepository) SetOnline(ctx context.Context, id string, online bool) error {
	query := `UPDATE drivers SET is_online = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, online)
	if err != nil {
		return fmt.Errorf("set driver online: %w", err)
	}

	return r.requireRow(res)
}

func (r *DriverRepository) UpdateLocation(ctx context.Context, id string, lat, lon float64) error {
	query := `UPDATE drivers SET lat = $2, lon = $3, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, lat, lon)
	if err != nil {
		return fmt.Errorf("update driver location: %w", err)
	}

	return r.requireRow(res)
}

func (r *DriverRepository) requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}
