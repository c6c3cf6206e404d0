package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-bikeshare/internal/model"
)

func sampleReport(t *testing.T) (*model.Report, *model.Table) {
	t.Helper()
	table := readFixture(t, chicagoCSV, model.CityChicago)
	ts, _ := TimeStats(table)
	ss, _ := StationStats(table)
	ds, _ := DurationStats(table)
	us, _ := UserStats(table)
	return &model.Report{
		RunID:    "run-1",
		Criteria: model.FilterCriteria{City: model.CityChicago, Month: model.All, Day: model.All},
		RowCount: table.Len(),
		Time:     ts,
		Stations: ss,
		Duration: &ds,
		Users:    us,
	}, table
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestReportLines(t *testing.T) {
	report, _ := sampleReport(t)
	lines := ReportLines(report)

	got := make(map[string]bool, len(lines))
	for _, l := range lines {
		got[strings.Join(l, "|")] = true
	}
	for _, want := range []string{
		"filter|city|chicago|",
		"time|most_common_month|june|2",
		"station|most_common_trip|Canal St & Adams St -> Clark St & Randolph St|2",
		"duration|mean_seconds|700.00|",
		"user|gender|Male|3",
		"user|most_common_birth_year|1985|",
	} {
		if !got[want] {
			t.Fatalf("missing line %q", want)
		}
	}
}

func TestExportManager_ExportReport(t *testing.T) {
	report, _ := sampleReport(t)
	em := NewExportManager(report.RunID, t.TempDir())

	res, err := em.ExportReport(report, "report.csv")
	if err != nil {
		t.Fatalf("csv export: %v", err)
	}
	if res.Type != "csv" || filepath.Base(filepath.Dir(res.Path)) != report.RunID {
		t.Fatalf("unexpected result: %+v", res)
	}
	records := readCSV(t, res.Path)
	if len(records) != res.RecordCount+1 {
		t.Fatalf("expected %d records plus header, got %d", res.RecordCount, len(records))
	}
	if strings.Join(records[0], ",") != "section,statistic,value,count" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	res, err = em.ExportReport(report, "report.json")
	if err != nil {
		t.Fatalf("json export: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var decoded struct {
		ExportInfo map[string]interface{} `json:"export_info"`
		Data       model.Report           `json:"data"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded.ExportInfo["run_id"] != report.RunID || decoded.Data.RowCount != 6 {
		t.Fatalf("unexpected json export: %+v", decoded)
	}
}

func TestExportManager_ExportRows(t *testing.T) {
	_, table := sampleReport(t)
	em := NewExportManager("run-2", t.TempDir())

	res, err := em.ExportRows(table, "rows.csv")
	if err != nil {
		t.Fatalf("rows export: %v", err)
	}
	if res.RecordCount != 6 {
		t.Fatalf("expected 6 rows, got %d", res.RecordCount)
	}
	records := readCSV(t, res.Path)
	if len(records) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d", len(records))
	}
	first := records[1]
	if first[0] != "2017-01-01 09:07:57" || first[7] != "1990" || first[8] != "january" || first[10] != "9" {
		t.Fatalf("unexpected first row: %v", first)
	}
}

func TestDefaultNames(t *testing.T) {
	c := model.FilterCriteria{City: model.CityNewYork, Month: "may", Day: model.All}
	if got := DefaultReportName(c); got != "new_york_city_may_all_report.csv" {
		t.Fatalf("unexpected report name %q", got)
	}
	if got := DefaultRowsName(c); got != "new_york_city_may_all_rows.csv" {
		t.Fatalf("unexpected rows name %q", got)
	}
}

func TestCloseFile_ReportsCloseError(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.csv"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// second close fails and must surface
	var got error
	closeFile(file, &got)
	if got == nil {
		t.Fatalf("expected close error to be reported")
	}

	// an earlier error is kept
	earlier := os.ErrInvalid
	got = earlier
	closeFile(file, &got)
	if got != earlier {
		t.Fatalf("expected earlier error to be kept, got %v", got)
	}
}
