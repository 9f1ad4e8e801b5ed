package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"day-zero/pkg/models"
)

// Header is the column order of the aligned table.
var Header = []string{
	"country", "new", "total", "days", "new_deceased", "total_deceased", "increase",
	"total_per_mil", "new_per_mil", "new_deceased_per_mil", "total_deceased_per_mil", "population",
}

// WriteCSV writes rows in Header order. Undefined per-capita values are
// written as NaN.
func WriteCSV(w io.Writer, rows []models.AlignedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("write %s day %d: %w", r.Country, r.Days, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r models.AlignedRecord) []string {
	return []string{
		r.Country,
		strconv.Itoa(r.NewCases),
		strconv.Itoa(r.TotalCases),
		strconv.Itoa(r.Days),
		strconv.Itoa(r.NewDeaths),
		strconv.Itoa(r.TotalDeaths),
		formatFloat(r.PercentIncrease),
		formatFloat(r.TotalPerMil),
		formatFloat(r.NewPerMil),
		formatFloat(r.NewDeathsPerMil),
		formatFloat(r.TotalDeathsPerMil),
		formatFloat(r.Population),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
