package models

import "fmt"

// Calendar constants of the simulation. The game runs on a simplified
// calendar of 12 months with 30 days each.
const (
	DaysPerMonth  = 30
	MonthsPerYear = 12
	DaysPerYear   = DaysPerMonth * MonthsPerYear
)

// GameDate is an in-game calendar date.
type GameDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (d GameDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysSince returns the number of days elapsed from other to d on the
// simplified calendar. Negative when other is in the future.
func (d GameDate) DaysSince(other GameDate) int {
	return (d.Year-other.Year)*DaysPerYear +
		(d.Month-other.Month)*DaysPerMonth +
		(d.Day - other.Day)
}

// NextDay returns the following calendar day, rolling months and years.
func (d GameDate) NextDay() GameDate {
	d.Day++
	if d.Day > DaysPerMonth {
		d.Day = 1
		d.Month++
	}
	if d.Month > MonthsPerYear {
		d.Month = 1
		d.Year++
	}
	return d
}

// SameMonth reports whether both dates fall in the same year and month.
func (d GameDate) SameMonth(other GameDate) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// Before reports whether d precedes other.
func (d GameDate) Before(other GameDate) bool {
	return d.DaysSince(other) < 0
}
