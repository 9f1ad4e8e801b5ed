package source

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"day-zero/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `DateRep,CountryExp,NewConfCases,NewDeaths,population
03/02/20,Italy,561,6,60360000
03/01/20,Italy,240,8,60360000
03/01/20,Iceland,1,0,364000
`

func TestReadCSV(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, models.CaseReport{
		DateRep:      "03/02/20",
		Country:      "Italy",
		NewConfCases: 561,
		NewDeaths:    6,
		Population:   60360000,
	}, got[0])
	assert.Equal(t, "Iceland", got[2].Country)
	assert.Equal(t, 1, got[2].NewConfCases)
	assert.InDelta(t, 364000, got[2].Population, 0)
}

func TestReadCSV_ExtraColumnsIgnored(t *testing.T) {
	in := `GeoId,DateRep,CountryExp,NewConfCases,NewDeaths,population
IT,03/02/20,Italy,561,6,60360000
`
	got, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Italy", got[0].Country)
}

func TestReadCSV_MissingPopulationIsNaN(t *testing.T) {
	in := `DateRep,CountryExp,NewConfCases,NewDeaths,population
03/02/20,Atlantis,3,0,
`
	got, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0].Population))
}

func TestReadCSV_NAStringsKept(t *testing.T) {
	in := `DateRep,CountryExp,NewConfCases,NewDeaths,population
NA,NA,3,0,NA
`
	got, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NA", got[0].DateRep)
	assert.Equal(t, "NA", got[0].Country)
	assert.True(t, math.IsNaN(got[0].Population))
}

func TestReadCSV_MissingColumn(t *testing.T) {
	in := `DateRep,CountryExp,NewConfCases,population
03/02/20,Italy,561,60360000
`
	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColNewDeaths)
}

func TestReadCSV_NonIntegerCount(t *testing.T) {
	in := `DateRep,CountryExp,NewConfCases,NewDeaths,population
03/02/20,Italy,many,6,60360000
`
	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColNewConfCases)
}

func TestCSVFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	got, err := CSVFile{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCSVFile_LoadMissingFile(t *testing.T) {
	_, err := CSVFile{Path: filepath.Join(t.TempDir(), "nope.csv")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
