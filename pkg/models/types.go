package models

import (
	"errors"
	"fmt"
)

/*
LOAD → raw case reports as read from the CSV export or the database.
*/

// DateLayout is the calendar format of CaseReport.DateRep (M/D/YY). Month
// and day parse with or without a leading zero.
const DateLayout = "1/2/06"

// ErrInvalidRecord is returned for input rows that break the record contract.
var ErrInvalidRecord = errors.New("invalid case report")

// CaseReport is one row per country per report date.
type CaseReport struct {
	DateRep      string  // "MM/DD/YY", parsed during realignment
	Country      string  // grouping key
	NewConfCases int     // new confirmed cases on DateRep
	NewDeaths    int     // new deaths on DateRep
	Population   float64 // zero or NaN when unknown
}

// Validate checks the fields that cannot be recovered from later on.
// Population is not checked: an unknown population only makes
// the per-capita values undefined.
func (r CaseReport) Validate() error {
	if r.Country == "" {
		return fmt.Errorf("%w: empty country (date %q)", ErrInvalidRecord, r.DateRep)
	}
	if r.NewConfCases < 0 {
		return fmt.Errorf("%w: %s %s: negative new cases %d", ErrInvalidRecord, r.Country, r.DateRep, r.NewConfCases)
	}
	if r.NewDeaths < 0 {
		return fmt.Errorf("%w: %s %s: negative new deaths %d", ErrInvalidRecord, r.Country, r.DateRep, r.NewDeaths)
	}
	return nil
}

/*
COMPUTE → one row per qualifying report, indexed by days since Day 0
*/

// AlignedRecord is a country's report re-indexed relative to its Day 0.
type AlignedRecord struct {
	Country           string
	Days              int // 0 on Day 0, contiguous afterwards
	TotalCases        int // running total including pre-Day-0 reports
	TotalDeaths       int // running total including pre-Day-0 reports
	NewCases          int
	NewDeaths         int
	Population        float64
	PercentIncrease   float64 // new cases relative to the previous running total, in %
	TotalPerMil       float64 // TotalCases / Population
	NewPerMil         float64 // NewCases / Population
	NewDeathsPerMil   float64 // NewDeaths / Population
	TotalDeathsPerMil float64 // TotalDeaths / Population
}

/*
CONFIG → run parameters
*/

// Config holds the parameters passed to calculator.Run.
type Config struct {
	Rule      string   // alignment rule name, e.g. "total_case_count"
	Threshold *float64 // nil → rule default
	Progress  bool     // render a progress bar while folding countries
}
