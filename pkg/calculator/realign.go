package calculator

import (
	"cmp"
	"slices"
	"time"

	"day-zero/pkg/models"
)

// Option tunes a Realign call.
type Option func(*options)

type options struct {
	threshold *float64
	onCountry func(country string, rows int)
}

// WithThreshold overrides the rule's default threshold.
func WithThreshold(v float64) Option {
	return func(o *options) { o.threshold = &v }
}

// withCountryHook is called once per country after its fold, with the
// number of rows it produced.
func withCountryHook(fn func(country string, rows int)) Option {
	return func(o *options) { o.onCountry = fn }
}

type datedReport struct {
	models.CaseReport
	date time.Time
}

// Realign groups records by country, folds each country's reports in date
// order and returns the rows on or after each country's Day 0.
//
// Countries appear in ascending name order, each country's rows in date
// order. The call fails without output when ruleName is unknown or any
// report date does not parse.
func Realign(records []models.CaseReport, ruleName string, opts ...Option) ([]models.AlignedRecord, error) {
	rule, err := ParseRule(ruleName)
	if err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	threshold := rule.DefaultThreshold()
	if o.threshold != nil {
		threshold = *o.threshold
	}

	dated, err := sortByCountryDate(records)
	if err != nil {
		return nil, err
	}

	out := make([]models.AlignedRecord, 0, len(dated))
	for start := 0; start < len(dated); {
		end := start + 1
		for end < len(dated) && dated[end].Country == dated[start].Country {
			end++
		}
		before := len(out)
		out = foldCountry(out, dated[start:end], rule, threshold)
		if o.onCountry != nil {
			o.onCountry(dated[start].Country, len(out)-before)
		}
		start = end
	}
	return withPerMillion(out), nil
}

// CountCountries returns the number of distinct countries in records.
func CountCountries(records []models.CaseReport) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Country] = struct{}{}
	}
	return len(seen)
}

func sortByCountryDate(records []models.CaseReport) ([]datedReport, error) {
	dated := make([]datedReport, len(records))
	for i, r := range records {
		d, err := time.Parse(models.DateLayout, r.DateRep)
		if err != nil {
			return nil, &DateParseError{Country: r.Country, Value: r.DateRep, Err: err}
		}
		dated[i] = datedReport{CaseReport: r, date: d}
	}
	slices.SortStableFunc(dated, func(a, b datedReport) int {
		if c := cmp.Compare(a.Country, b.Country); c != 0 {
			return c
		}
		return a.date.Compare(b.date)
	})
	return dated, nil
}

// foldCountry walks one country's reports in date order. Reports before
// Day 0 still feed the running totals.
func foldCountry(out []models.AlignedRecord, reports []datedReport, rule Rule, threshold float64) []models.AlignedRecord {
	var total, totalDeaths, day int
	for _, r := range reports {
		total += r.NewConfCases
		totalDeaths += r.NewDeaths
		if !rule.Evaluate(r.CaseReport, total, threshold) {
			continue
		}
		out = append(out, models.AlignedRecord{
			Country:         r.Country,
			Days:            day,
			TotalCases:      total,
			TotalDeaths:     totalDeaths,
			NewCases:        r.NewConfCases,
			NewDeaths:       r.NewDeaths,
			Population:      r.Population,
			PercentIncrease: percentIncrease(r.NewConfCases, total),
		})
		day++
	}
	return out
}

// percentIncrease is the jump caused by today's cases over yesterday's
// running total; 100 when nothing was reported before.
func percentIncrease(newCases, total int) float64 {
	if total == newCases {
		return 100
	}
	return float64(newCases) / float64(total-newCases) * 100
}

func withPerMillion(rows []models.AlignedRecord) []models.AlignedRecord {
	out := make([]models.AlignedRecord, len(rows))
	for i, r := range rows {
		r.TotalPerMil = perCapita(r.TotalCases, r.Population)
		r.NewPerMil = perCapita(r.NewCases, r.Population)
		r.NewDeathsPerMil = perCapita(r.NewDeaths, r.Population)
		r.TotalDeathsPerMil = perCapita(r.TotalDeaths, r.Population)
		out[i] = r
	}
	return out
}
