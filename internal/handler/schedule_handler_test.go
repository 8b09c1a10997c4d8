package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	"github.com/jadwalku/jadwal-api/internal/service"
)

type scheduleRepoStub struct {
	schedules []models.Schedule
}

func (s *scheduleRepoStub) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, int, error) {
	return s.schedules, len(s.schedules), nil
}

func (s *scheduleRepoStub) All(ctx context.Context) ([]models.Schedule, error) {
	return s.schedules, nil
}

func (s *scheduleRepoStub) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			return &s.schedules[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *scheduleRepoStub) Create(ctx context.Context, schedule *models.Schedule) error {
	schedule.ID = "schedule-new"
	s.schedules = append(s.schedules, *schedule)
	return nil
}

func (s *scheduleRepoStub) Update(ctx context.Context, schedule *models.Schedule) error {
	return nil
}

func (s *scheduleRepoStub) Delete(ctx context.Context, id string) error {
	return nil
}

func newScheduleRouter(repo *scheduleRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(service.NewScheduleService(repo, nil, zap.NewNop()))
	r := gin.New()
	r.GET("/schedules", h.List)
	r.POST("/schedules", h.Create)
	r.GET("/schedules/conflicts", h.Conflicts)
	r.GET("/schedules/:id", h.Get)
	return r
}

func TestScheduleHandlerConflicts(t *testing.T) {
	repo := &scheduleRepoStub{schedules: []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Subject: "Matematika", Teacher: "Budi", Classes: []string{"X-A"}},
		{ID: "s2", Day: 1, JP: 1, Subject: "Fisika", Teacher: "Budi", Classes: []string{"X-B"}},
	}}
	r := newScheduleRouter(repo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/schedules/conflicts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []struct {
			Kind   string `json:"kind"`
			Entity string `json:"entity"`
			Day    int    `json:"day"`
			JP     int    `json:"jp"`
		} `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "teacher", envelope.Data[0].Kind)
	assert.Equal(t, "Budi", envelope.Data[0].Entity)
	assert.Equal(t, float64(1), envelope.Meta["total"])
}

func TestScheduleHandlerCreateInvalidDay(t *testing.T) {
	r := newScheduleRouter(&scheduleRepoStub{})

	body, _ := json.Marshal(map[string]interface{}{"day": 9, "jp": 1, "subject": "Fisika"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerGetNotFound(t *testing.T) {
	r := newScheduleRouter(&scheduleRepoStub{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/schedules/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
