package models

import (
	"time"

	"github.com/google/uuid"

	"gosaju/domain/cycle"
	"gosaju/domain/gyeokguk"
	"gosaju/domain/interpret"
	"gosaju/domain/relation"
	"gosaju/domain/saju"
	"gosaju/domain/strength"
	"gosaju/domain/yongsin"
)

// BirthInput is the raw request for a chart analysis.
type BirthInput struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	Hour        int     `json:"hour"`
	Minute      int     `json:"minute"`
	Gender      string  `json:"gender"`
	City        string  `json:"city,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	ZasiMode    string  `json:"zasiMode,omitempty"`
	UnknownHour bool    `json:"unknownHour,omitempty"`
}

// Metadata records which rules fired and how long the engine took,
// so identical inputs can be audited for identical rule paths.
type Metadata struct {
	RulesApplied   []string      `json:"rulesApplied"`
	ProcessingTime time.Duration `json:"processingTime"`
	Confidence     float64       `json:"confidence"`
}

// Analysis is the complete deterministic engine output for one chart.
// Everything in it is computed symbolically; the LLM only ever narrates
// on top of these facts.
type Analysis struct {
	ID    uuid.UUID  `json:"id"`
	Chart saju.Chart `json:"chart"`

	Correction struct {
		ClockTime     time.Time `json:"clockTime"`
		SolarTime     time.Time `json:"solarTime"`
		LongitudeMin  float64   `json:"longitudeCorrection"`
		EquationMin   float64   `json:"equationOfTime"`
		HistoricalMin float64   `json:"historicalCorrection"`
	} `json:"correction"`

	Strength     strength.Result       `json:"strength"`
	Distribution strength.Distribution `json:"distribution"`

	Gyeokguk       gyeokguk.Result `json:"gyeokguk"`
	GyeokgukStatus gyeokguk.Status `json:"gyeokgukStatus"`

	Yongsin yongsin.Analysis `json:"yongsin"`

	Interactions []relation.Interaction `json:"interactions"`
	Markers      []relation.Marker      `json:"sinsals"`

	Decades []cycle.DecadePillar `json:"daeWoon"`
	Annuals []cycle.AnnualPillar `json:"seWoon"`

	Interpretations map[interpret.Category]interpret.Selection `json:"interpretations"`

	Metadata Metadata `json:"metadata"`
}

// IsStrong is a convenience passthrough used by the prompt builders.
func (a *Analysis) IsStrong() bool { return a.Strength.IsStrong }
