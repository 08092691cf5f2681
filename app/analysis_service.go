// Package app wires the deterministic engine stages into services the
// transport layer calls.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gosaju/ai"
	"gosaju/domain/calendar"
	"gosaju/domain/cycle"
	"gosaju/domain/gyeokguk"
	"gosaju/domain/interpret"
	"gosaju/domain/relation"
	"gosaju/domain/saju"
	"gosaju/domain/strength"
	"gosaju/domain/yongsin"
	"gosaju/internal"
	"gosaju/internal/errors"
	"gosaju/models"
	"gosaju/ports"
)

const (
	decadeCount = 10
	annualCount = 10
)

// AnalysisService runs the full rule engine: time correction, chart
// casting, strength, pattern, yongsin, relations, cycles and template
// interpretation. Identical inputs always produce identical output;
// "now" is injected, never read from the clock.
type AnalysisService struct {
	oracle ports.CalendarOracle
}

func NewAnalysisService(oracle ports.CalendarOracle) *AnalysisService {
	return &AnalysisService{oracle: oracle}
}

func parseGender(s string) (saju.Gender, error) {
	switch s {
	case "male", "":
		return saju.Male, nil
	case "female":
		return saju.Female, nil
	}
	return "", errors.InvalidInput("gender must be male or female")
}

func parseZasi(s string) (calendar.ZasiMode, error) {
	switch s {
	case "", string(calendar.ZasiUnified):
		return calendar.ZasiUnified, nil
	case string(calendar.ZasiYaja):
		return calendar.ZasiYaja, nil
	case string(calendar.ZasiJoja):
		return calendar.ZasiJoja, nil
	}
	return "", errors.InvalidInput("unknown zasi mode")
}

// Analyze executes the engine for one birth input. now fixes the annual
// cycle window.
func (s *AnalysisService) Analyze(ctx context.Context, input models.BirthInput, now time.Time) (*models.Analysis, error) {
	started := time.Now()

	gender, err := parseGender(input.Gender)
	if err != nil {
		return nil, err
	}
	zasi, err := parseZasi(input.ZasiMode)
	if err != nil {
		return nil, err
	}
	if input.Month < 1 || input.Month > 12 || input.Day < 1 || input.Day > 31 {
		return nil, errors.InvalidInput("invalid birth date")
	}
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return nil, errors.InvalidInput("invalid birth time")
	}
	if input.UnknownHour {
		// Unknown birth hour defaults to high noon, the conventional
		// neutral choice.
		input.Hour, input.Minute = 12, 0
	}

	longitude := input.Longitude
	if longitude == 0 {
		longitude = calendar.LongitudeFor(input.City)
	}

	clock := time.Date(input.Year, time.Month(input.Month), input.Day,
		input.Hour, input.Minute, 0, 0, time.Local)
	corrected := calendar.Correct(clock, longitude, zasi, true)

	raw, err := s.oracle.FourPillars(corrected.Final)
	if err != nil {
		return nil, errors.Wrap(err, "cast four pillars")
	}
	chart := saju.NewChart(raw, gender, clock)

	st := strength.Analyze(chart)
	dist := strength.CountElements(chart)

	a := &models.Analysis{
		ID:           uuid.New(),
		Chart:        chart,
		Strength:     st,
		Distribution: dist,
	}
	a.Correction.ClockTime = clock
	a.Correction.SolarTime = corrected.Final
	a.Correction.LongitudeMin = corrected.Correction.Longitude
	a.Correction.EquationMin = corrected.Correction.Equation
	a.Correction.HistoricalMin = corrected.Correction.Historical

	// The remaining analyzers only read the finished chart, so they can
	// run concurrently.
	var g errgroup.Group

	g.Go(func() error {
		a.Gyeokguk = gyeokguk.Classify(chart)
		a.GyeokgukStatus = gyeokguk.AnalyzeStatus(chart, a.Gyeokguk)
		return nil
	})
	g.Go(func() error {
		a.Yongsin = yongsin.Analyze(chart, st, dist)
		return nil
	})
	g.Go(func() error {
		a.Interactions = relation.Detect(chart)
		a.Markers = relation.DetectMarkers(chart)
		return nil
	})
	g.Go(func() error {
		steps, err := s.oracle.DecadeSteps(corrected.Final, gender, decadeCount)
		if err != nil {
			return errors.Wrap(err, "decade steps")
		}
		a.Decades = cycle.Decades(chart.DayMaster(), steps)

		annuals, err := cycle.Annuals(chart.DayMaster(), s.oracle, now.Year(), annualCount)
		if err != nil {
			return errors.Wrap(err, "annual pillars")
		}
		a.Annuals = annuals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.Interpretations = interpret.SelectAll(interpret.Facts{
		GyeokgukID:     a.Gyeokguk.ID,
		IsStrong:       st.IsStrong,
		YongsinElement: a.Yongsin.Primary.Governing,
		DayElement:     chart.DayElement(),
	})

	a.Metadata = models.Metadata{
		RulesApplied:   ai.RulesApplied(a),
		ProcessingTime: time.Since(started),
		Confidence:     a.Gyeokguk.Confidence,
	}

	internal.DefaultLogger.Debug("analysis %s: %v in %s",
		a.ID, a.Metadata.RulesApplied, a.Metadata.ProcessingTime)

	return a, nil
}
