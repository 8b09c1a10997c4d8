package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	"github.com/jadwalku/jadwal-api/internal/timetable"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

type timeSlotRepository interface {
	List(ctx context.Context) ([]models.TimeSlot, error)
	FindByID(ctx context.Context, id string) (*models.TimeSlot, error)
	Create(ctx context.Context, slot *models.TimeSlot) error
	Update(ctx context.Context, slot *models.TimeSlot) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// TimeSlotRequest is the payload for creating or updating a slot.
// Lessons carry a JP number, breaks carry a display name.
type TimeSlotRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=lesson break"`
	JP        int    `json:"jp" validate:"required_if=Kind lesson,omitempty,min=1,max=20"`
	Name      string `json:"name" validate:"required_if=Kind break,omitempty,max=100"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Order     int    `json:"order" validate:"min=0"`
}

// CurrentStatus describes where the clock sits relative to the slot table.
type CurrentStatus struct {
	Day          int              `json:"day"`
	DayName      string           `json:"day_name"`
	SchoolHours  bool             `json:"school_hours"`
	Slot         *models.TimeSlot `json:"slot,omitempty"`
	SlotLabel    string           `json:"slot_label,omitempty"`
	Source       string           `json:"source"`
	CheckedAtUTC time.Time        `json:"checked_at_utc"`
}

// TimeSlotService manages the school day slot table.
type TimeSlotService struct {
	repo      timeSlotRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTimeSlotService constructs a TimeSlotService.
func NewTimeSlotService(repo timeSlotRepository, validate *validator.Validate, logger *zap.Logger) *TimeSlotService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimeSlotService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Resolve returns the active slot table: every custom row when any exist,
// otherwise the built-in default table. The two sources never mix.
func (s *TimeSlotService) Resolve(ctx context.Context) (*models.TimeSlotSet, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list time slots")
	}
	if len(slots) == 0 {
		return &models.TimeSlotSet{Source: models.SlotSourceDefault, Slots: timetable.DefaultTimeSlots()}, nil
	}
	return &models.TimeSlotSet{Source: models.SlotSourceCustom, Slots: slots}, nil
}

// Create stores a new custom slot.
func (s *TimeSlotService) Create(ctx context.Context, req TimeSlotRequest) (*models.TimeSlot, error) {
	slot, err := s.buildSlot(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create time slot")
	}
	return slot, nil
}

// Update modifies an existing custom slot.
func (s *TimeSlotService) Update(ctx context.Context, id string, req TimeSlotRequest) (*models.TimeSlot, error) {
	slot, err := s.buildSlot(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "time slot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load time slot")
	}

	existing.Kind = slot.Kind
	existing.JP = slot.JP
	existing.Name = slot.Name
	existing.StartTime = slot.StartTime
	existing.EndTime = slot.EndTime
	existing.Order = slot.Order
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update time slot")
	}
	return existing, nil
}

// Delete removes a custom slot. Deleting the last one reverts the table
// to the built-in default.
func (s *TimeSlotService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "time slot not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load time slot")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete time slot")
	}
	return nil
}

// Reorder rewrites display order to match the given id sequence.
func (s *TimeSlotService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "ids must not be empty")
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return appErrors.Clone(appErrors.ErrValidation, "ids must not contain blanks")
		}
		if _, dup := seen[id]; dup {
			return appErrors.Clone(appErrors.ErrValidation, "ids must not repeat")
		}
		seen[id] = struct{}{}
	}
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder time slots")
	}
	return nil
}

// Current reports the school day and the slot the wall clock falls in.
func (s *TimeSlotService) Current(ctx context.Context) (*CurrentStatus, error) {
	set, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := &CurrentStatus{
		Day:          timetable.CurrentDay(now),
		Source:       set.Source,
		CheckedAtUTC: now.UTC(),
	}
	status.DayName = timetable.DayName(status.Day)

	inHours, err := timetable.IsSchoolHours(set.Slots, now)
	if err != nil {
		return nil, err
	}
	status.SchoolHours = inHours

	slot, err := timetable.CurrentSlot(set.Slots, now)
	if err != nil {
		return nil, err
	}
	if slot != nil {
		status.Slot = slot
		status.SlotLabel = timetable.SlotLabel(*slot)
	}
	return status, nil
}

func (s *TimeSlotService) buildSlot(req TimeSlotRequest) (*models.TimeSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload")
	}

	start, err := timetable.MinutesOfDay(req.StartTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedInput.Code, appErrors.ErrMalformedInput.Status, "malformed start_time")
	}
	end, err := timetable.MinutesOfDay(req.EndTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedInput.Code, appErrors.ErrMalformedInput.Status, "malformed end_time")
	}
	if end <= start {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}

	slot := &models.TimeSlot{
		Kind:      req.Kind,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Order:     req.Order,
	}
	switch req.Kind {
	case models.SlotKindLesson:
		slot.JP = req.JP
	case models.SlotKindBreak:
		slot.Name = strings.TrimSpace(req.Name)
	}
	return slot, nil
}
