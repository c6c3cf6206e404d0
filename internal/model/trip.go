package model

import (
	"strings"
	"time"
)

// Dataset column headers
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every dataset header
var RequiredColumns = []string{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

// TripRecord represents a single bike rental
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time,omitempty"`
	Duration     float64   `json:"trip_duration"` // seconds
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    *int      `json:"birth_year,omitempty"` // nil when missing
}

// Month is the lowercase English month name of the start time.
func (r TripRecord) Month() string {
	return strings.ToLower(r.StartTime.Month().String())
}

// DayOfWeek is the lowercase English weekday name of the start time.
func (r TripRecord) DayOfWeek() string {
	return strings.ToLower(r.StartTime.Weekday().String())
}

// Hour is the hour of day (0-23) of the start time.
func (r TripRecord) Hour() int {
	return r.StartTime.Hour()
}
