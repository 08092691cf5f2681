// Package excel renders a finished analysis as a 만세력 workbook:
// the four pillars with hidden stems and stages, the element
// distribution, and the cycle projections.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gosaju/domain/saju"
	"gosaju/models"
)

const sheetName = "만세력"

// ReportWriter renders analyses into xlsx workbooks.
type ReportWriter struct{}

func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Write renders the workbook for one analysis into w.
func (rw *ReportWriter) Write(w io.Writer, a *models.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := rw.writePillars(f, a, header); err != nil {
		return err
	}
	if err := rw.writeDistribution(f, a, header); err != nil {
		return err
	}
	if err := rw.writeCycles(f, a, header); err != nil {
		return err
	}

	for _, col := range []string{"A", "B", "C", "D", "E", "F"} {
		if err := f.SetColWidth(sheetName, col, col, 16); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func hiddenStemText(b saju.Branch) string {
	out := ""
	for _, s := range saju.HiddenStems(b) {
		out += string(s)
	}
	return out
}

func (rw *ReportWriter) writePillars(f *excelize.File, a *models.Analysis, header int) error {
	if err := setRow(f, 1, "구분", "시주", "일주", "월주", "년주"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", header); err != nil {
		return err
	}

	c := a.Chart
	// Traditional layout runs hour to year, right to left on paper.
	cols := []saju.Pillar{c.Hour, c.Day, c.Month, c.Year}

	rows := []struct {
		label string
		value func(p saju.Pillar) interface{}
	}{
		{"천간", func(p saju.Pillar) interface{} { return string(p.Stem) }},
		{"지지", func(p saju.Pillar) interface{} { return string(p.Branch) }},
		{"지장간", func(p saju.Pillar) interface{} { return hiddenStemText(p.Branch) }},
		{"십성(간)", func(p saju.Pillar) interface{} { return string(p.TenGodStem) }},
		{"십성(지)", func(p saju.Pillar) interface{} { return string(p.TenGodBranch) }},
		{"12운성", func(p saju.Pillar) interface{} { return string(p.TwelveStage) }},
	}

	for i, row := range rows {
		values := []interface{}{row.label}
		for _, p := range cols {
			values = append(values, row.value(p))
		}
		if err := setRow(f, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

func (rw *ReportWriter) writeDistribution(f *excelize.File, a *models.Analysis, header int) error {
	base := 9
	if err := setRow(f, base, "오행", "비율(%)"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", base), fmt.Sprintf("B%d", base), header); err != nil {
		return err
	}
	for i, e := range saju.Elements {
		if err := setRow(f, base+1+i, string(e), a.Distribution.Percents[e]); err != nil {
			return err
		}
	}

	strength := "신약"
	if a.Strength.IsStrong {
		strength = "신강"
	}
	if err := setRow(f, base+7, "신강/신약", fmt.Sprintf("%s (%d점)", strength, a.Strength.Score)); err != nil {
		return err
	}
	return setRow(f, base+8, "용신", fmt.Sprintf("%s (%s)",
		a.Yongsin.Primary.Governing, a.Yongsin.Primary.Method))
}

func (rw *ReportWriter) writeCycles(f *excelize.File, a *models.Analysis, header int) error {
	base := 19
	if err := setRow(f, base, "대운", "간지", "십성", "12운성"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", base), fmt.Sprintf("D%d", base), header); err != nil {
		return err
	}
	row := base + 1
	for _, d := range a.Decades {
		err := setRow(f, row,
			fmt.Sprintf("%d-%d세", d.StartAge, d.EndAge),
			string(d.Stem)+string(d.Branch),
			string(d.TenGod),
			string(d.TwelveStage))
		if err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, row, "세운", "간지", "십성", "12운성"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), header); err != nil {
		return err
	}
	row++
	for _, s := range a.Annuals {
		err := setRow(f, row,
			fmt.Sprintf("%d년", s.Year),
			string(s.Stem)+string(s.Branch),
			string(s.TenGod),
			string(s.TwelveStage))
		if err != nil {
			return err
		}
		row++
	}
	return nil
}
