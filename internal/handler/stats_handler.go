package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadwalku/jadwal-api/internal/service"
	"github.com/jadwalku/jadwal-api/pkg/response"
)

// StatsHandler exposes workload recap endpoints.
type StatsHandler struct {
	stats   *service.StatsService
	exports *service.ExportService
	metrics *service.MetricsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats *service.StatsService, exports *service.ExportService, metrics *service.MetricsService) *StatsHandler {
	return &StatsHandler{stats: stats, exports: exports, metrics: metrics}
}

// Workloads godoc
// @Summary Teacher workload recap
// @Description Per-teacher JP totals under the active counting policy, including task load and per-day breakdown.
// @Tags Stats
// @Produce json
// @Param policy query string false "Override the counting policy (perClass or perSession)"
// @Success 200 {object} response.Envelope
// @Router /stats/teachers [get]
func (h *StatsHandler) Workloads(c *gin.Context) {
	report, err := h.stats.TeacherWorkloads(c.Request.Context(), c.Query("policy"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordCacheLookup(report.FromCache)
	response.JSON(c, http.StatusOK, report, nil, map[string]interface{}{"cache": report.FromCache})
}

// Workload godoc
// @Summary One teacher's workload summary
// @Tags Stats
// @Produce json
// @Param id path string true "Teacher id"
// @Param policy query string false "Override the counting policy (perClass or perSession)"
// @Success 200 {object} response.Envelope
// @Router /stats/teachers/{id} [get]
func (h *StatsHandler) Workload(c *gin.Context) {
	workload, err := h.stats.TeacherWorkload(c.Request.Context(), c.Param("id"), c.Query("policy"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workload, nil)
}

// Export godoc
// @Summary Export workload recap
// @Tags Stats
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Router /stats/teachers/export [get]
func (h *StatsHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	file, err := h.exports.WorkloadRecap(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
