package calculator

import (
	"context"
	"fmt"

	"day-zero/pkg/models"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Source provides the raw case reports.
type Source interface {
	Load(ctx context.Context) ([]models.CaseReport, error)
}

// Run loads the reports from src, validates them and realigns them with the
// rule configured in cfg.
func Run(ctx context.Context, src Source, cfg models.Config, log logrus.FieldLogger) ([]models.AlignedRecord, error) {
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	threshold := rule.DefaultThreshold()
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	log = log.WithFields(logrus.Fields{"rule": rule.String(), "threshold": threshold})

	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	countries := CountCountries(records)
	log.WithFields(logrus.Fields{"records": len(records), "countries": countries}).Info("Loaded case reports")

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(countries), "realigning")
	}
	skipped := 0
	rows, err := Realign(records, rule.String(),
		WithThreshold(threshold),
		withCountryHook(func(country string, n int) {
			if bar != nil {
				_ = bar.Add(1)
			}
			if n == 0 {
				skipped++
			}
			log.WithFields(logrus.Fields{"country": country, "rows": n}).Debug("Country realigned")
		}),
	)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rows":              len(rows),
		"countries_no_day0": skipped,
	}).Info("Realignment complete")
	return rows, nil
}
