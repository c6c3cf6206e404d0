package model

import "time"

// Frequency is one (value, count) pair of a most-common result
type Frequency struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyResult holds every value tied for the maximum count, sorted by value
type FrequencyResult struct {
	Column  string      `json:"column"`
	Entries []Frequency `json:"entries"`
}

// Max returns the shared maximum count
func (r FrequencyResult) Max() int {
	if len(r.Entries) == 0 {
		return 0
	}
	return r.Entries[0].Count
}

// TripFrequency is a most-common (start station, end station) pair
type TripFrequency struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Count        int    `json:"count"`
}

// TimeStats are the most frequent times of travel
type TimeStats struct {
	Months []Frequency `json:"months"`
	Days   []Frequency `json:"days"`
	Hours  []Frequency `json:"hours"`
}

// StationStats are the most popular stations and trips
type StationStats struct {
	StartStations []Frequency     `json:"start_stations"`
	EndStations   []Frequency     `json:"end_stations"`
	Trips         []TripFrequency `json:"trips"`
}

// DurationSummary holds trip duration aggregates in seconds
type DurationSummary struct {
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

// TotalHours converts the total to hours
func (d DurationSummary) TotalHours() float64 { return d.TotalSeconds / 3600 }

// MeanMinutes converts the mean to minutes
func (d DurationSummary) MeanMinutes() float64 { return d.MeanSeconds / 60 }

// CategoryCount is a count for one categorical value
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Breakdown is a categorical count section.
// Available is false when the dataset has no such column, which is
// different from an available section with zero counts.
type Breakdown struct {
	Available bool            `json:"available"`
	Counts    []CategoryCount `json:"counts"`
}

// BirthYearStats holds birth year extremes and mode
type BirthYearStats struct {
	Available  bool `json:"available"`
	Empty      bool `json:"empty,omitempty"` // column present, no values after dropping missing
	Earliest   int  `json:"earliest,omitempty"`
	MostRecent int  `json:"most_recent,omitempty"`
	MostCommon int  `json:"most_common,omitempty"`
}

// DemographicsReport summarizes bikeshare users
type DemographicsReport struct {
	UserTypes []CategoryCount `json:"user_types"`
	Gender    Breakdown       `json:"gender"`
	BirthYear BirthYearStats  `json:"birth_year"`
}

// StageTiming records how long one analysis stage took
type StageTiming struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration"`
}

// Report is the structured output of one analysis run
type Report struct {
	RunID       string             `json:"run_id"`
	Criteria    FilterCriteria     `json:"criteria"`
	RowCount    int                `json:"row_count"`
	Time        *TimeStats         `json:"time_stats,omitempty"`
	Stations    *StationStats      `json:"station_stats,omitempty"`
	Duration    *DurationSummary   `json:"duration_stats,omitempty"`
	Users       DemographicsReport `json:"user_stats"`
	Stages      []StageTiming      `json:"stages"`
	Warnings    []string           `json:"warnings,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}
