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

const bookingColumns = `id, customer_id, customer_name, customer_phone,
	pickup_label, pickup_lat, pickup_lon,
	delivery_label, delivery_lat, delivery_lon,
	baggage_size, baggage_count, pickup_time, instructions,
	price_cents, commission_cents, driver_earnings_cents,
	status, driver_id, accepted_at, picked_up_at, delivered_at,
	created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingScanner) (*domain.Booking, error) {
	var b domain.Booking
	var instructions sql.NullString
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone,
		&b.Pickup.Label, &b.Pickup.Lat, &b.Pickup.Lon,
		&b.Delivery.Label, &b.Delivery.Lat, &b.Delivery.Lon,
		&b.BaggageSize, &b.BaggageCount, &b.PickupTime, &instructions,
		&b.PriceCents, &b.CommissionCents, &b.DriverEarningsCents,
		&b.Status, &b.DriverID, &b.AcceptedAt, &b.PickedUpAt, &b.DeliveredAt,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Instructions = instructions.String
	return &b, nil
}

// Create кладёт бронь и её платёжную запись в одной транзакции.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, customer_id, customer_name, customer_phone,
				pickup_label, pickup_lat, pickup_lon,
				delivery_label, delivery_lat, delivery_lon,
				baggage_size, baggage_count, pickup_time, instructions,
				price_cents, commission_cents, driver_earnings_cents,
				status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			  		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.CustomerID, b.CustomerName, b.CustomerPhone,
		b.Pickup.Label, b.Pickup.Lat, b.Pickup.Lon,
		b.Delivery.Label, b.Delivery.Lat, b.Delivery.Lon,
		b.BaggageSize, b.BaggageCount, b.PickupTime, b.Instructions,
		b.PriceCents, b.CommissionCents, b.DriverEarningsCents,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	payQuery := `INSERT INTO payments (id, booking_id, amount_cents, status, created_at)
				 VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, payQuery, p.ID, p.BookingID, p.AmountCents, p.Status, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// GetDetails возвращает бронь со сводками клиента и курьера одним запросом.
func (r *BookingRepository) GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error) {
	query := `SELECT b.id, b.customer_id, b.customer_name, b.customer_phone,
				b.pickup_label, b.pickup_lat, b.pickup_lon,
				b.delivery_label, b.delivery_lat, b.delivery_lon,
				b.baggage_size, b.baggage_count, b.pickup_time, b.instructions,
				b.price_cents, b.commission_cents, b.driver_earnings_cents,
				b.status, b.driver_id, b.accepted_at, b.picked_up_at, b.delivered_at,
				b.created_at, b.updated_at,
				cu.id, cu.name, cu.email, cu.phone,
				d.id, du.name, du.phone, d.vehicle_type, d.rating,
				p.id, p.booking_id, p.amount_cents, p.status, p.created_at
			  FROM bookings b
			  JOIN users cu ON cu.id = b.customer_id
			  LEFT JOIN drivers d ON d.id = b.driver_id
			  LEFT JOIN users du ON du.id = d.user_id
			  LEFT JOIN payments p ON p.booking_id = b.id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking details: %w", err)
	}

	var det domain.BookingDetails
	var b domain.Booking
	var instructions sql.NullString
	var cust domain.UserSummary
	var drvID, drvName, drvPhone, drvVehicle sql.NullString
	var drvRating sql.NullFloat64
	var payID, payBooking, payStatus sql.NullString
	var payAmount sql.NullInt64
	var payCreated sql.NullTime

	err = row.Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone,
		&b.Pickup.Label, &b.Pickup.Lat, &b.Pickup.Lon,
		&b.Delivery.Label, &b.Delivery.Lat, &b.Delivery.Lon,
		&b.BaggageSize, &b.BaggageCount, &b.PickupTime, &instructions,
		&b.PriceCents, &b.CommissionCents, &b.DriverEarningsCents,
		&b.Status, &b.DriverID, &b.AcceptedAt, &b.PickedUpAt, &b.DeliveredAt,
		&b.CreatedAt, &b.UpdatedAt,
		&cust.ID, &cust.Name, &cust.Email, &cust.Phone,
		&drvID, &drvName, &drvPhone, &drvVehicle, &drvRating,
		&payID, &payBooking, &payAmount, &payStatus, &payCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking details: %w", err)
	}

	b.Instructions = instructions.String
	det.Booking = b
	det.Customer = &cust
	if drvID.Valid {
		det.Driver = &domain.DriverSummary{
			ID:          drvID.String,
			Name:        drvName.String,
			Phone:       drvPhone.String,
			VehicleType: domain.VehicleType(drvVehicle.String),
			Rating:      drvRating.Float64,
		}
	}
	if payID.Valid {
		det.Payment = &domain.Payment{
			ID:          payID.String,
			BookingID:   payBooking.String,
			AmountCents: payAmount.Int64,
			Status:      domain.PaymentStatus(payStatus.String),
			CreatedAt:   payCreated.Time,
		}
	}

	return &det, nil
}

// List не меняет состояние и безопасен при параллельных записях:
// читатель видит либо старую, либо новую версию брони, но не половину обновления.
func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := make([]any, 0, 3)

	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.DriverID != "" {
		args = append(args, f.DriverID)
		query += fmt.Sprintf(" AND driver_id = $%d", len(args))
	}
	if len(f.Statuses) > 0 {
		args = append(args, pq.Array(f.Statuses))
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Accept — одно условное обновление по ожидаемому статусу: из двух гонящихся
// курьеров побеждает ровно один, второй получает ErrInvalidTransition.
func (r *BookingRepository) Accept(ctx context.Context, bookingID, driverID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, driver_id = $2, accepted_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, bookingID, driverID,
		domain.BookingStatusAccepted, domain.BookingStatusAwaitingDriver,
	)
	if err != nil {
		return nil, fmt.Errorf("accept booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.transitionFailure(ctx, bookingID)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) MarkPickedUp(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, picked_up_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusPickedUp, domain.BookingStatusAccepted,
	)
	if err != nil {
		return nil, fmt.Errorf("mark picked up: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.transitionFailure(ctx, bookingID)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// MarkDelivered закрывает бронь и в той же транзакции начисляет курьеру
// заработок и доставку, чтобы счётчики не разошлись со статусом.
func (r *BookingRepository) MarkDelivered(ctx context.Context, bookingID string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, delivered_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	row := tx.QueryRowContext(
		ctx, query, bookingID,
		domain.BookingStatusDelivered, domain.BookingStatusPickedUp,
	)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.transitionFailure(ctx, bookingID)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if b.DriverID != nil {
		statsQuery := `UPDATE drivers
					   SET total_deliveries = total_deliveries + 1,
					   	   earnings_cents = earnings_cents + $2,
					   	   updated_at = now()
					   WHERE id = $1`
		if _, err = tx.ExecContext(ctx, statsQuery, *b.DriverID, b.DriverEarningsCents); err != nil {
			return nil, fmt.Errorf("update driver stats: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delivery: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusCancelled, pq.Array(domain.OpenStatuses),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.transitionFailure(ctx, bookingID)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// CancelStale отменяет невостребованные брони, чьё время забора прошло
// дольше grace назад. Тот же условный UPDATE, что и у ручной отмены.
func (r *BookingRepository) CancelStale(ctx context.Context, grace time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND pickup_time + make_interval(secs => $3) < now()
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusAwaitingDriver, domain.BookingStatusCancelled,
		grace.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// transitionFailure различает причину нулевого обновления:
// брони нет вовсе или переход из её текущего статуса не определён.
func (r *BookingRepository) transitionFailure(ctx context.Context, bookingID string) error {
	var status string
	query := `SELECT status FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking: %w", err)
	}

	return domain.ErrInvalidTransition
}
