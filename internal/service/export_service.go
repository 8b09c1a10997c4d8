package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/timetable"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
	"github.com/jadwalku/jadwal-api/pkg/export"
)

// Export formats supported by the workload recap.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportFile is a rendered document ready to stream to the client.
type ExportFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

type workloadSource interface {
	TeacherWorkloads(ctx context.Context, policyOverride string) (*WorkloadReport, error)
}

// ExportService renders the teacher workload recap as CSV or PDF.
type ExportService struct {
	stats   workloadSource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	maxRows int
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(stats workloadSource, maxRows int, logger *zap.Logger) *ExportService {
	if maxRows <= 0 {
		maxRows = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		stats:   stats,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		maxRows: maxRows,
		logger:  logger,
	}
}

// WorkloadRecap renders the current workload recap in the given format
// under the configured policy.
func (s *ExportService) WorkloadRecap(ctx context.Context, format string) (*ExportFile, error) {
	report, err := s.stats.TeacherWorkloads(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(report.Teachers) > s.maxRows {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("recap exceeds export limit of %d rows", s.maxRows))
	}

	data := workloadDataset(report)
	switch format {
	case ExportFormatCSV:
		body, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			FileName:    "rekap-beban-mengajar.csv",
			ContentType: "text/csv",
			Body:        body,
		}, nil
	case ExportFormatPDF:
		body, err := s.pdf.Render(data, "Rekap Beban Mengajar Guru")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			FileName:    "rekap-beban-mengajar.pdf",
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("unknown export format %q", format))
}

func workloadDataset(report *WorkloadReport) export.Dataset {
	headers := []string{"Nama Guru"}
	weights := []float64{3}
	for day := 1; day <= timetable.SchoolDays; day++ {
		headers = append(headers, timetable.ShortDayName(day))
		weights = append(weights, 1)
	}
	headers = append(headers, "JP Mengajar", "Beban Tugas", "Total JP")
	weights = append(weights, 1.5, 1.5, 1.5)

	rows := make([]map[string]string, 0, len(report.Teachers))
	for _, t := range report.Teachers {
		row := map[string]string{"Nama Guru": t.TeacherName}
		for day := 1; day <= timetable.SchoolDays; day++ {
			row[timetable.ShortDayName(day)] = strconv.Itoa(t.ByDay[day])
		}
		row["JP Mengajar"] = strconv.Itoa(t.Teaching)
		row["Beban Tugas"] = strconv.Itoa(t.TaskLoad)
		row["Total JP"] = strconv.Itoa(t.Total)
		rows = append(rows, row)
	}

	return export.Dataset{Headers: headers, Rows: rows, ColumnWeights: weights}
}
