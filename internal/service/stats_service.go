package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	"github.com/jadwalku/jadwal-api/internal/timetable"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

// TeacherWorkload is one teacher's load summary in the recap report.
type TeacherWorkload struct {
	TeacherID   string        `json:"teacher_id"`
	TeacherName string        `json:"teacher_name"`
	ByDay       map[int]int   `json:"by_day"`
	Teaching    int           `json:"teaching_jp"`
	TaskLoad    int           `json:"task_jp"`
	Total       int           `json:"total_jp"`
	Tasks       []models.Task `json:"tasks"`
}

// WorkloadReport is the full recap with the policy it was computed under.
type WorkloadReport struct {
	Policy    timetable.Policy  `json:"policy"`
	Teachers  []TeacherWorkload `json:"teachers"`
	FromCache bool              `json:"-"`
}

type statsTeacherSource interface {
	All(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

type statsScheduleSource interface {
	All(ctx context.Context) ([]models.Schedule, error)
}

type statsTaskSource interface {
	List(ctx context.Context) ([]models.Task, error)
}

type policySource interface {
	GetPolicy(ctx context.Context) (timetable.Policy, error)
}

// StatsService computes teacher workload recaps with a short-lived cache.
type StatsService struct {
	teachers  statsTeacherSource
	schedules statsScheduleSource
	tasks     statsTaskSource
	policies  policySource
	cache     *redis.Client
	cacheTTL  time.Duration
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStatsService constructs a StatsService. A nil cache client disables
// caching entirely; a nil metrics service disables query timing.
func NewStatsService(
	teachers statsTeacherSource,
	schedules statsScheduleSource,
	tasks statsTaskSource,
	policies policySource,
	cache *redis.Client,
	cacheTTL time.Duration,
	metrics *MetricsService,
	logger *zap.Logger,
) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &StatsService{
		teachers:  teachers,
		schedules: schedules,
		tasks:     tasks,
		policies:  policies,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *StatsService) loadSnapshot(ctx context.Context) ([]models.Teacher, []models.Schedule, []models.Task, error) {
	start := time.Now()
	teachers, err := s.teachers.All(ctx)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teachers")
	}
	s.metrics.ObserveDBQuery("teachers_all", time.Since(start))

	start = time.Now()
	schedules, err := s.schedules.All(ctx)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedules")
	}
	s.metrics.ObserveDBQuery("schedules_all", time.Since(start))

	start = time.Now()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tasks")
	}
	s.metrics.ObserveDBQuery("tasks_list", time.Since(start))

	return teachers, schedules, tasks, nil
}

func workloadCacheKey(policy timetable.Policy) string {
	return fmt.Sprintf("stats:workload:%s", policy)
}

func (s *StatsService) resolvePolicy(ctx context.Context, override string) (timetable.Policy, error) {
	if override != "" {
		return timetable.ParsePolicy(override)
	}
	return s.policies.GetPolicy(ctx)
}

// TeacherWorkloads builds the per-teacher load recap. An empty policy
// override uses the configured policy. Results are cached per policy, any
// write to master data simply waits out the TTL.
func (s *StatsService) TeacherWorkloads(ctx context.Context, policyOverride string) (*WorkloadReport, error) {
	policy, err := s.resolvePolicy(ctx, policyOverride)
	if err != nil {
		return nil, err
	}

	if cached := s.fromCache(ctx, policy); cached != nil {
		cached.FromCache = true
		return cached, nil
	}

	teachers, schedules, tasks, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := &WorkloadReport{
		Policy:   policy,
		Teachers: make([]TeacherWorkload, 0, len(teachers)),
	}
	for _, t := range teachers {
		summary, err := timetable.TotalLoad(t, schedules, tasks, policy)
		if err != nil {
			return nil, err
		}
		report.Teachers = append(report.Teachers, TeacherWorkload{
			TeacherID:   t.ID,
			TeacherName: t.Name,
			ByDay:       summary.ByDay,
			Teaching:    summary.TeachingLoad,
			TaskLoad:    summary.TaskLoad,
			Total:       summary.GrandTotal,
			Tasks:       summary.Tasks,
		})
	}

	s.toCache(ctx, policy, report)
	return report, nil
}

// TeacherWorkload computes one teacher's load summary. Single lookups skip
// the cache, the full snapshot walk is cheap for one teacher.
func (s *StatsService) TeacherWorkload(ctx context.Context, id, policyOverride string) (*TeacherWorkload, error) {
	policy, err := s.resolvePolicy(ctx, policyOverride)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	schedules, err := s.schedules.All(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedules")
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tasks")
	}

	summary, err := timetable.TotalLoad(*teacher, schedules, tasks, policy)
	if err != nil {
		return nil, err
	}
	return &TeacherWorkload{
		TeacherID:   teacher.ID,
		TeacherName: teacher.Name,
		ByDay:       summary.ByDay,
		Teaching:    summary.TeachingLoad,
		TaskLoad:    summary.TaskLoad,
		Total:       summary.GrandTotal,
		Tasks:       summary.Tasks,
	}, nil
}

// InvalidateCache drops cached recaps for both policies. Handlers call it
// after mutations so stale numbers never outlive a write by more than the
// in-flight requests.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := []string{
		workloadCacheKey(timetable.PolicyPerClass),
		workloadCacheKey(timetable.PolicyPerSession),
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}

func (s *StatsService) fromCache(ctx context.Context, policy timetable.Policy) *WorkloadReport {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, workloadCacheKey(policy)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return nil
	}
	var report WorkloadReport
	if err := json.Unmarshal(raw, &report); err != nil {
		s.logger.Warn("stats cache entry corrupt", zap.Error(err))
		return nil
	}
	return &report
}

func (s *StatsService) toCache(ctx context.Context, policy timetable.Policy, report *WorkloadReport) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, workloadCacheKey(policy), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
}
