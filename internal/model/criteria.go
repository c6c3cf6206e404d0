package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// All is the filter sentinel meaning "no restriction"
const All = "all"

// City keys
const (
	CityChicago    = "chicago"
	CityNewYork    = "new york city"
	CityWashington = "washington"
)

// CityData maps each city key to its default dataset file
var CityData = map[string]string{
	CityChicago:    "chicago.csv",
	CityNewYork:    "new_york_city.csv",
	CityWashington: "washington.csv",
}

// Cities lists the city keys in display order
var Cities = []string{CityChicago, CityNewYork, CityWashington}

// Months lists the month vocabulary, "all" last
var Months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december", All,
}

// Days lists the day-of-week vocabulary, "all" last
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", All}

// FilterCriteria selects a dataset and the subset of rows to analyze
type FilterCriteria struct {
	City  string `json:"city" validate:"required,oneof=chicago 'new york city' washington"`
	Month string `json:"month" validate:"required,oneof=january february march april may june july august september october november december all"`
	Day   string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday all"`
}

var validate = validator.New()

// NewFilterCriteria normalizes raw input and validates it.
// Empty month or day default to "all".
func NewFilterCriteria(city, month, day string) (FilterCriteria, error) {
	c := FilterCriteria{
		City:  Normalize(city),
		Month: Normalize(month),
		Day:   Normalize(day),
	}
	if c.Month == "" {
		c.Month = All
	}
	if c.Day == "" {
		c.Day = All
	}
	return c, c.Validate()
}

// Validate checks the criteria against the fixed vocabularies
func (c FilterCriteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s %q", ErrInvalidFilter, strings.ToLower(fe.Field()), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}

func (c FilterCriteria) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", c.City, c.Month, c.Day)
}

// Normalize trims and lowercases user input
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsMonth reports whether s is a month name or "all"
func IsMonth(s string) bool { return contains(Months, Normalize(s)) }

// IsDay reports whether s is a day name or "all"
func IsDay(s string) bool { return contains(Days, Normalize(s)) }

// IsCity reports whether s is a known city key
func IsCity(s string) bool {
	_, ok := CityData[Normalize(s)]
	return ok
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
