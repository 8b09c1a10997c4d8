package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jadwalku/jadwal-api/internal/models"
)

// TimeSlotRepository manages persistence for configured time slots.
type TimeSlotRepository struct {
	db *sqlx.DB
}

// NewTimeSlotRepository constructs a TimeSlotRepository.
func NewTimeSlotRepository(db *sqlx.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// List returns all configured slots ordered by sort_order. An empty result
// means no custom configuration exists; the service layer synthesizes the
// default table in that case.
func (r *TimeSlotRepository) List(ctx context.Context) ([]models.TimeSlot, error) {
	const query = `SELECT id, kind, jp, start_time, end_time, break_name, sort_order, created_at, updated_at FROM time_slots ORDER BY sort_order ASC, created_at ASC`
	var slots []models.TimeSlot
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return slots, nil
}

// FindByID fetches a slot by ID.
func (r *TimeSlotRepository) FindByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	const query = `SELECT id, kind, jp, start_time, end_time, break_name, sort_order, created_at, updated_at FROM time_slots WHERE id = $1`
	var slot models.TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}
	return &slot, nil
}

// Create inserts a new slot.
func (r *TimeSlotRepository) Create(ctx context.Context, slot *models.TimeSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	const query = `INSERT INTO time_slots (id, kind, jp, start_time, end_time, break_name, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.db.ExecContext(ctx, query, slot.ID, slot.Kind, slot.JP, slot.StartTime, slot.EndTime, slot.Name, slot.Order, slot.CreatedAt, slot.UpdatedAt); err != nil {
		return fmt.Errorf("create time slot: %w", err)
	}
	return nil
}

// Update modifies an existing slot.
func (r *TimeSlotRepository) Update(ctx context.Context, slot *models.TimeSlot) error {
	slot.UpdatedAt = time.Now().UTC()

	const query = `UPDATE time_slots SET kind = $2, jp = $3, start_time = $4, end_time = $5, break_name = $6, sort_order = $7, updated_at = $8 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, slot.ID, slot.Kind, slot.JP, slot.StartTime, slot.EndTime, slot.Name, slot.Order, slot.UpdatedAt); err != nil {
		return fmt.Errorf("update time slot: %w", err)
	}
	return nil
}

// Delete removes a slot row.
func (r *TimeSlotRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM time_slots WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}

// Reorder rewrites sort_order to 1..N following the given ID order, in one
// transaction so readers never see a half-applied ordering.
func (r *TimeSlotRepository) Reorder(ctx context.Context, ids []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE time_slots SET sort_order = $2, updated_at = $3 WHERE id = $1`
	now := time.Now().UTC()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, query, id, i+1, now); err != nil {
			return fmt.Errorf("reorder time slot %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}
