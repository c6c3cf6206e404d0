package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// timeLayouts are tried in order when parsing start/end times
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04",
}

// ------------------- Loader -------------------

// Loader resolves city keys to dataset files and reads them
type Loader struct {
	DataDir string
	Sources map[string]string // city key -> file name or path
}

// NewLoader creates a loader. A nil sources map uses the default city files.
func NewLoader(dataDir string, sources map[string]string) *Loader {
	if sources == nil {
		sources = model.CityData
	}
	return &Loader{DataDir: dataDir, Sources: sources}
}

// Path returns the dataset path for a city key
func (l *Loader) Path(city string) (string, error) {
	file, ok := l.Sources[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownCity, city)
	}
	if filepath.IsAbs(file) || l.DataDir == "" {
		return file, nil
	}
	return filepath.Join(l.DataDir, file), nil
}

// Load reads the city's dataset and applies the month and day filters.
// An empty result is not an error.
func (l *Loader) Load(ctx context.Context, city, month, day string) (*model.Table, error) {
	table, err := l.LoadAll(ctx, city)
	if err != nil {
		return nil, err
	}
	return Filter(table, month, day)
}

// LoadAll reads the city's dataset without filtering
func (l *Loader) LoadAll(ctx context.Context, city string) (*model.Table, error) {
	path, err := l.Path(city)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	start := time.Now()
	table, err := ReadTable(ctx, file, city)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"city": city,
		"path": path,
		"rows": table.Len(),
	}).Debugf("dataset loaded in %v", time.Since(start))
	return table, nil
}

// ------------------- CSV parsing -------------------

// ReadTable parses a trip CSV into a table. Any unparseable required
// field aborts the whole read with a *model.DataFormatError.
func ReadTable(ctx context.Context, r io.Reader, city string) (*model.Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		// Clean header names: trim whitespace, BOM and quotes
		h = strings.TrimPrefix(h, "\ufeff")
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	schema := model.NewSchema(headers)
	for _, col := range model.RequiredColumns {
		if !schema.Has(col) {
			return nil, fmt.Errorf("%w: %q", model.ErrMissingColumn, col)
		}
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	table := &model.Table{City: city, Schema: schema}
	rowNum := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		rowNum++

		rec, err := parseRecord(record, index, schema, rowNum)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}

// parseRecord converts one CSV row into a TripRecord
func parseRecord(record []string, index map[string]int, schema model.Schema, rowNum int) (model.TripRecord, error) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	formatErr := func(col, value string, err error) error {
		return &model.DataFormatError{Row: rowNum, Column: col, Value: value, Err: err}
	}

	var rec model.TripRecord

	raw := field(model.ColStartTime)
	start, err := parseTime(raw)
	if err != nil {
		return rec, formatErr(model.ColStartTime, raw, err)
	}
	rec.StartTime = start

	if schema.HasEndTime {
		if raw := field(model.ColEndTime); raw != "" {
			end, err := parseTime(raw)
			if err != nil {
				return rec, formatErr(model.ColEndTime, raw, err)
			}
			rec.EndTime = end
		}
	}

	raw = field(model.ColTripDuration)
	duration, err := parseFinite(raw)
	if err != nil {
		return rec, formatErr(model.ColTripDuration, raw, err)
	}
	rec.Duration = duration

	rec.StartStation = field(model.ColStartStation)
	rec.EndStation = field(model.ColEndStation)
	rec.UserType = field(model.ColUserType)

	if schema.HasGender {
		rec.Gender = field(model.ColGender)
	}

	if schema.HasBirthYear {
		if raw := field(model.ColBirthYear); !isMissing(raw) {
			// Birth years are often written as floats, e.g. "1992.0"
			f, err := parseFinite(raw)
			if err == nil && (f < math.MinInt32 || f > math.MaxInt32) {
				err = errors.New("value out of range")
			}
			if err != nil {
				return rec, formatErr(model.ColBirthYear, raw, err)
			}
			year := int(f)
			rec.BirthYear = &year
		}
	}

	return rec, nil
}

// isMissing reports whether an optional field holds no value
func isMissing(s string) bool {
	return s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "na")
}

// parseFinite parses a decimal number, rejecting NaN and infinities
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("value is not a finite number")
	}
	return f, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}
