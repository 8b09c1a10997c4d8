package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jadwalku/jadwal-api/internal/models"
)

// ScheduleRepository manages persistence for teaching assignments.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List returns schedules matching filters along with total count, ordered
// by day then JP.
func (r *ScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, int, error) {
	base := "FROM schedules WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Day > 0 {
		conditions = append(conditions, fmt.Sprintf("day = $%d", len(args)+1))
		args = append(args, filter.Day)
	}
	if filter.JP > 0 {
		conditions = append(conditions, fmt.Sprintf("jp = $%d", len(args)+1))
		args = append(args, filter.JP)
	}
	if filter.Teacher != "" {
		conditions = append(conditions, fmt.Sprintf("teacher = $%d", len(args)+1))
		args = append(args, filter.Teacher)
	}
	if filter.Class != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(classes)", len(args)+1))
		args = append(args, filter.Class)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, day, jp, subject, teacher, classes, created_at, updated_at %s ORDER BY day ASC, jp ASC LIMIT %d OFFSET %d", base, size, offset)
	var schedules []models.Schedule
	if err := r.db.SelectContext(ctx, &schedules, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list schedules: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count schedules: %w", err)
	}

	return schedules, total, nil
}

// All returns every schedule row in one read. Conflict detection and load
// calculation run on this snapshot so they see a consistent assignment set.
func (r *ScheduleRepository) All(ctx context.Context) ([]models.Schedule, error) {
	const query = `SELECT id, day, jp, subject, teacher, classes, created_at, updated_at FROM schedules ORDER BY day ASC, jp ASC`
	var schedules []models.Schedule
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("list all schedules: %w", err)
	}
	return schedules, nil
}

// FindByID fetches a schedule by ID.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	const query = `SELECT id, day, jp, subject, teacher, classes, created_at, updated_at FROM schedules WHERE id = $1`
	var schedule models.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create inserts a new schedule.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	if schedule.Classes == nil {
		schedule.Classes = pq.StringArray{}
	}

	const query = `INSERT INTO schedules (id, day, jp, subject, teacher, classes, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, query, schedule.ID, schedule.Day, schedule.JP, schedule.Subject, schedule.Teacher, schedule.Classes, schedule.CreatedAt, schedule.UpdatedAt); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// Update modifies an existing schedule.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	schedule.UpdatedAt = time.Now().UTC()
	if schedule.Classes == nil {
		schedule.Classes = pq.StringArray{}
	}

	const query = `UPDATE schedules SET day = $2, jp = $3, subject = $4, teacher = $5, classes = $6, updated_at = $7 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, schedule.ID, schedule.Day, schedule.JP, schedule.Subject, schedule.Teacher, schedule.Classes, schedule.UpdatedAt); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// Delete removes a schedule row.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM schedules WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
