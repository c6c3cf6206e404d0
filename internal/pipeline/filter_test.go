package pipeline

import (
	"errors"
	"testing"

	"go-bikeshare/internal/model"
)

func TestFilter(t *testing.T) {
	table := readFixture(t, chicagoCSV, model.CityChicago)

	tests := []struct {
		month, day string
		want       int
	}{
		{model.All, model.All, 6},
		{"march", model.All, 2},
		{model.All, "monday", 3},
		{"march", "monday", 1},
		{"MARCH", " Monday ", 1},
		{"december", model.All, 0},
		{"january", "tuesday", 0},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.day, func(t *testing.T) {
			got, err := Filter(table, tt.month, tt.day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Len() != tt.want {
				t.Fatalf("expected %d rows, got %d", tt.want, got.Len())
			}
			for _, rec := range got.Rows {
				if m := model.Normalize(tt.month); m != model.All && rec.Month() != m {
					t.Fatalf("row with month %s leaked through filter", rec.Month())
				}
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	table := readFixture(t, chicagoCSV, model.CityChicago)
	first := table.Rows[0]

	filtered, err := Filter(table, "june", model.All)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 6 || table.Rows[0] != first {
		t.Fatalf("input table was modified")
	}
	if filtered.Schema.HasGender != table.Schema.HasGender || filtered.City != table.City {
		t.Fatalf("filtered table lost schema or city")
	}

	filtered.Rows[0].UserType = "changed"
	if table.Rows[4].UserType != "Subscriber" {
		t.Fatalf("filtered rows share storage with the input")
	}
}

func TestFilter_IdempotentAndCommutative(t *testing.T) {
	table := readFixture(t, chicagoCSV, model.CityChicago)

	once, _ := Filter(table, "march", "sunday")
	twice, _ := Filter(once, "march", "sunday")
	if once.Len() != twice.Len() {
		t.Fatalf("filter not idempotent: %d vs %d", once.Len(), twice.Len())
	}

	monthFirst, _ := Filter(table, "march", model.All)
	monthFirst, _ = Filter(monthFirst, model.All, "sunday")
	dayFirst, _ := Filter(table, model.All, "sunday")
	dayFirst, _ = Filter(dayFirst, "march", model.All)
	if monthFirst.Len() != once.Len() || dayFirst.Len() != once.Len() {
		t.Fatalf("filter order changed result: %d %d %d", monthFirst.Len(), dayFirst.Len(), once.Len())
	}
}

func TestFilter_InvalidVocabulary(t *testing.T) {
	table := readFixture(t, chicagoCSV, model.CityChicago)

	if _, err := Filter(table, "jan", model.All); !errors.Is(err, model.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for month, got %v", err)
	}
	if _, err := Filter(table, model.All, "funday"); !errors.Is(err, model.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for day, got %v", err)
	}
}

func TestFilter_NilTable(t *testing.T) {
	if _, err := Filter(nil, model.All, model.All); !errors.Is(err, model.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for nil table, got %v", err)
	}
}
