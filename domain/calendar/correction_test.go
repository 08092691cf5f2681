package calendar

import (
	"math"
	"testing"
	"time"

	"gosaju/domain/saju"
)

func TestHourBranchOf(t *testing.T) {
	tests := []struct {
		hour     int
		expected saju.Branch
	}{
		{23, saju.Ja},
		{0, saju.Ja},
		{1, saju.Chuk},
		{2, saju.Chuk},
		{3, saju.In},
		{5, saju.Myo},
		{10, saju.Sa},
		{12, saju.O},
		{15, saju.SinB},
		{22, saju.Hae},
	}

	for _, test := range tests {
		if got := HourBranchOf(test.hour); got != test.expected {
			t.Errorf("HourBranchOf(%d) = %s, expected %s", test.hour, got, test.expected)
		}
	}
}

func TestEraFor(t *testing.T) {
	tests := []struct {
		date     time.Time
		meridian float64
	}{
		{time.Date(1900, 6, 1, 0, 0, 0, 0, time.UTC), 127.5},
		{time.Date(1930, 6, 1, 0, 0, 0, 0, time.UTC), 135},
		{time.Date(1955, 6, 1, 0, 0, 0, 0, time.UTC), 127.5}, // 표준시 환원기
		{time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC), 135},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 135},
	}

	for _, test := range tests {
		era := EraFor(test.date)
		if era.StandardMeridian != test.meridian {
			t.Errorf("EraFor(%s) meridian = %v, expected %v",
				test.date.Format("2006-01-02"), era.StandardMeridian, test.meridian)
		}
	}
}

func TestEquationOfTime(t *testing.T) {
	// Day 81 zeroes the harmonic argument, leaving only the cosine term.
	if got := EquationOfTime(81); math.Abs(got-(-7.53)) > 0.01 {
		t.Errorf("EquationOfTime(81) = %v, expected about -7.53", got)
	}

	// The equation of time never exceeds about 17 minutes.
	for day := 1; day <= 366; day++ {
		if v := EquationOfTime(day); math.Abs(v) > 17 {
			t.Errorf("EquationOfTime(%d) = %v, out of physical range", day, v)
		}
	}
}

func TestTrueSolarTimeSeoul(t *testing.T) {
	clock := time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC)
	corr := TrueSolarTime(clock, DefaultLongitude, true)

	// Seoul sits west of the 135° meridian: 4*(126.978-135) ≈ -32.1 min.
	if corr.Longitude != -32.1 {
		t.Errorf("longitude correction = %v, expected -32.1", corr.Longitude)
	}
	if corr.Historical != 0 {
		t.Errorf("historical correction in the current era = %v, expected 0", corr.Historical)
	}
	if !corr.Corrected.Before(clock) {
		t.Error("corrected time for Seoul should run behind the clock")
	}
	if corr.Era.StandardMeridian != 135 {
		t.Errorf("era meridian = %v, expected 135", corr.Era.StandardMeridian)
	}
}

func TestTrueSolarTimeHistoricalEra(t *testing.T) {
	// During the 1954-1961 reversion the clocks ran on 127.5° (UTC+8.5),
	// so the historical offset re-anchors them -30 minutes from KST.
	clock := time.Date(1958, 3, 1, 12, 0, 0, 0, time.UTC)
	corr := TrueSolarTime(clock, DefaultLongitude, true)

	if corr.Historical != -30 {
		t.Errorf("historical correction = %v, expected -30", corr.Historical)
	}

	noHist := TrueSolarTime(clock, DefaultLongitude, false)
	if noHist.Historical != 0 {
		t.Errorf("historical correction with applyHistorical=false = %v, expected 0", noHist.Historical)
	}
}

func TestAdjustForZasi(t *testing.T) {
	lateNight := time.Date(1990, 5, 15, 23, 30, 0, 0, time.UTC)
	evening := time.Date(1990, 5, 15, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     time.Time
		mode      ZasiMode
		wantShift bool
	}{
		{"unified keeps the civil date", lateNight, ZasiUnified, false},
		{"yajasi keeps the current day before midnight", lateNight, ZasiYaja, false},
		{"jojasi rolls the day forward from 23:00", lateNight, ZasiJoja, true},
		{"no policy applies outside the rat hour", evening, ZasiJoja, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			adjusted, changed := AdjustForZasi(test.input, test.mode)
			if changed != test.wantShift {
				t.Errorf("day changed = %v, expected %v", changed, test.wantShift)
			}
			wantDay := test.input.Day()
			if test.wantShift {
				wantDay++
			}
			if adjusted.Day() != wantDay {
				t.Errorf("adjusted day = %d, expected %d", adjusted.Day(), wantDay)
			}
		})
	}
}

func TestCorrectPipeline(t *testing.T) {
	clock := time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC)
	out := Correct(clock, DefaultLongitude, ZasiUnified, true)

	// About -32 minutes of longitude plus a few minutes of EoT still
	// lands inside the 사시 window (09:00-11:00).
	if out.HourBranch != saju.Sa {
		t.Errorf("hour branch = %s, expected 사", out.HourBranch)
	}
	if out.DayChanged {
		t.Error("mid-morning birth must not change the day")
	}
	if !out.Final.Equal(out.Correction.Corrected) {
		t.Error("with true solar applied, Final must be the corrected instant")
	}

	raw := Correct(clock, DefaultLongitude, ZasiUnified, false)
	if !raw.Final.Equal(clock) {
		t.Error("with true solar disabled, Final must be the clock instant")
	}
}

func TestLongitudeFor(t *testing.T) {
	if got := LongitudeFor("busan"); got != 129.0756 {
		t.Errorf("LongitudeFor(busan) = %v, expected 129.0756", got)
	}
	if got := LongitudeFor("atlantis"); got != DefaultLongitude {
		t.Errorf("unknown city must fall back to Seoul, got %v", got)
	}
	if got := LongitudeFor(""); got != DefaultLongitude {
		t.Errorf("empty city must fall back to Seoul, got %v", got)
	}
}
