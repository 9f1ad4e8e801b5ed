package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"day-zero/pkg/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the ECDC case-distribution export.
const (
	ColDateRep      = "DateRep"
	ColCountry      = "CountryExp"
	ColNewConfCases = "NewConfCases"
	ColNewDeaths    = "NewDeaths"
	ColPopulation   = "population"
)

// ReadCSV parses a case-report table. Counts must be integers; an empty or
// NA population is kept as NaN.
func ReadCSV(r io.Reader) ([]models.CaseReport, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		// NA is a valid country code; numeric columns still turn unparsable cells into NaN
		dataframe.NaNValues(nil),
		dataframe.WithTypes(map[string]series.Type{
			ColDateRep:      series.String,
			ColCountry:      series.String,
			ColNewConfCases: series.Int,
			ColNewDeaths:    series.Int,
			ColPopulation:   series.Float,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	cols := make(map[string]series.Series, 5)
	for _, name := range []string{ColDateRep, ColCountry, ColNewConfCases, ColNewDeaths, ColPopulation} {
		s := df.Col(name)
		if s.Err != nil {
			return nil, fmt.Errorf("column %s: %w", name, s.Err)
		}
		cols[name] = s
	}

	newCases, err := cols[ColNewConfCases].Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", ColNewConfCases, err)
	}
	newDeaths, err := cols[ColNewDeaths].Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", ColNewDeaths, err)
	}
	dates := cols[ColDateRep].Records()
	countries := cols[ColCountry].Records()
	population := cols[ColPopulation].Float()

	out := make([]models.CaseReport, df.Nrow())
	for i := range out {
		out[i] = models.CaseReport{
			DateRep:      dates[i],
			Country:      countries[i],
			NewConfCases: newCases[i],
			NewDeaths:    newDeaths[i],
			Population:   population[i],
		}
	}
	return out, nil
}

// CSVFile is a calculator.Source reading a CSV file from disk.
type CSVFile struct {
	Path string
}

func (f CSVFile) Load(_ context.Context) ([]models.CaseReport, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadCSV(fh)
}
