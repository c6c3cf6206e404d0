package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/pkg/utils"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}

// ExportManager writes reports and raw rows under a per-run directory
type ExportManager struct {
	RunID  string
	Output *utils.OutputManager
}

// NewExportManager creates an export manager rooted at baseDir
func NewExportManager(runID, baseDir string) *ExportManager {
	return &ExportManager{RunID: runID, Output: utils.NewOutputManager(baseDir)}
}

// ExportReport writes report to fileName, as JSON or CSV depending on the extension
func (em *ExportManager) ExportReport(report *model.Report, fileName string) (ExportResult, error) {
	path, err := em.Output.FilePath(em.RunID, fileName)
	if err != nil {
		return ExportResult{}, err
	}

	var count int
	fileType := utils.Format(path)
	switch fileType {
	case utils.FormatJSON:
		count, err = exportReportJSON(path, em.RunID, report)
	default:
		count, err = exportReportCSV(path, report)
	}
	if err != nil {
		return ExportResult{}, fmt.Errorf("export report: %w", err)
	}

	logrus.WithFields(logrus.Fields{"run_id": em.RunID, "path": path, "records": count}).Info("report exported")
	return ExportResult{Type: fileType, Path: path, RecordCount: count, ExportedAt: time.Now()}, nil
}

// ExportRows writes the table's rows to fileName as CSV
func (em *ExportManager) ExportRows(table *model.Table, fileName string) (ExportResult, error) {
	path, err := em.Output.FilePath(em.RunID, fileName)
	if err != nil {
		return ExportResult{}, err
	}

	count, err := exportRowsCSV(path, table)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export rows: %w", err)
	}

	logrus.WithFields(logrus.Fields{"run_id": em.RunID, "path": path, "records": count}).Info("rows exported")
	return ExportResult{Type: utils.FormatCSV, Path: path, RecordCount: count, ExportedAt: time.Now()}, nil
}

// ReportLines flattens a report into section/statistic/value/count lines
func ReportLines(report *model.Report) [][]string {
	var lines [][]string
	add := func(section, stat, value string, count int) {
		c := ""
		if count >= 0 {
			c = strconv.Itoa(count)
		}
		lines = append(lines, []string{section, stat, value, c})
	}
	freqs := func(section, stat string, entries []model.Frequency) {
		for _, f := range entries {
			add(section, stat, f.Value, f.Count)
		}
	}
	num := func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

	add("filter", "city", report.Criteria.City, -1)
	add("filter", "month", report.Criteria.Month, -1)
	add("filter", "day", report.Criteria.Day, -1)
	add("filter", "rows", strconv.Itoa(report.RowCount), -1)

	if t := report.Time; t != nil {
		freqs("time", "most_common_month", t.Months)
		freqs("time", "most_common_day", t.Days)
		freqs("time", "most_common_start_hour", t.Hours)
	}
	if s := report.Stations; s != nil {
		freqs("station", "most_common_start_station", s.StartStations)
		freqs("station", "most_common_end_station", s.EndStations)
		for _, trip := range s.Trips {
			add("station", "most_common_trip", trip.StartStation+" -> "+trip.EndStation, trip.Count)
		}
	}
	if d := report.Duration; d != nil {
		add("duration", "total_seconds", num(d.TotalSeconds), -1)
		add("duration", "mean_seconds", num(d.MeanSeconds), -1)
	}

	for _, c := range report.Users.UserTypes {
		add("user", "user_type", c.Value, c.Count)
	}
	if report.Users.Gender.Available {
		for _, c := range report.Users.Gender.Counts {
			add("user", "gender", c.Value, c.Count)
		}
	}
	if by := report.Users.BirthYear; by.Available && !by.Empty {
		add("user", "earliest_birth_year", strconv.Itoa(by.Earliest), -1)
		add("user", "most_recent_birth_year", strconv.Itoa(by.MostRecent), -1)
		add("user", "most_common_birth_year", strconv.Itoa(by.MostCommon), -1)
	}
	return lines
}

// exportReportCSV exports a report to CSV format
func exportReportCSV(path string, report *model.Report) (n int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer closeFile(file, &err)

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"section", "statistic", "value", "count"}); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	lines := ReportLines(report)
	if err := writer.WriteAll(lines); err != nil {
		return 0, fmt.Errorf("failed to write rows: %w", err)
	}
	return len(lines), nil
}

// exportReportJSON exports a report to JSON format with export metadata
func exportReportJSON(path, runID string, report *model.Report) (n int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer closeFile(file, &err)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"run_id":      runID,
			"exported_at": time.Now().UTC(),
			"export_type": "report",
		},
		"data": report,
	}
	if err := encoder.Encode(exportData); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return 1, nil
}

// RowHeader is the column order used for raw row output
var RowHeader = []string{
	model.ColStartTime, model.ColEndTime, model.ColTripDuration,
	model.ColStartStation, model.ColEndStation, model.ColUserType,
	model.ColGender, model.ColBirthYear, "month", "day_of_week", "hour",
}

// RowValues renders a trip record in RowHeader order
func RowValues(rec model.TripRecord) []string {
	end := ""
	if !rec.EndTime.IsZero() {
		end = rec.EndTime.Format(time.DateTime)
	}
	birth := ""
	if rec.BirthYear != nil {
		birth = strconv.Itoa(*rec.BirthYear)
	}
	return []string{
		rec.StartTime.Format(time.DateTime),
		end,
		strconv.FormatFloat(rec.Duration, 'f', -1, 64),
		rec.StartStation,
		rec.EndStation,
		rec.UserType,
		rec.Gender,
		birth,
		rec.Month(),
		rec.DayOfWeek(),
		strconv.Itoa(rec.Hour()),
	}
}

// exportRowsCSV exports raw rows to CSV format
func exportRowsCSV(path string, table *model.Table) (n int, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer closeFile(file, &err)

	writer := csv.NewWriter(file)
	if err := writer.Write(RowHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	recordCount := 0
	for _, rec := range table.Rows {
		if err := writer.Write(RowValues(rec)); err != nil {
			return recordCount, fmt.Errorf("failed to write row: %w", err)
		}
		recordCount++
	}
	writer.Flush()
	return recordCount, writer.Error()
}

// closeFile closes a written file, reporting the close error unless an
// earlier error is already set
func closeFile(file *os.File, err *error) {
	if cerr := file.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close file: %w", cerr)
	}
}

// exportName makes a default export file name for criteria
func exportName(c model.FilterCriteria, kind, ext string) string {
	city := strings.ReplaceAll(c.City, " ", "_")
	return fmt.Sprintf("%s_%s_%s_%s.%s", city, c.Month, c.Day, kind, ext)
}

// DefaultReportName is the file name used when no export path is given
func DefaultReportName(c model.FilterCriteria) string { return exportName(c, "report", "csv") }

// DefaultRowsName is the file name used for raw row exports
func DefaultRowsName(c model.FilterCriteria) string { return exportName(c, "rows", "csv") }
