// Package report renders the dashboard into a downloadable XLSX workbook.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/karanvs/studybuddy/internal/stats"
)

// Data is everything a report export needs, gathered by the caller so the
// writer stays free of store access.
type Data struct {
	Owner       string
	GeneratedAt time.Time
	Stats       stats.UserStats
	Weekly      []stats.DayActivity
	Subjects    []stats.SubjectTotal
}

// WriteXLSX writes the study report workbook to path.
func WriteXLSX(path string, data Data) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	cells := [][]interface{}{
		{"Study Report", data.Owner},
		{"Generated on", data.GeneratedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Streak (days)", data.Stats.Streak},
		{"Total hours", data.Stats.TotalHours},
		{"Hours this week", data.Stats.HoursWeek},
		{"Topics mastered", data.Stats.TopicsMastered},
		{"Daily goal", fmt.Sprintf("%d%%", data.Stats.DailyGoalPct)},
	}
	for i, row := range cells {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if err := writeActivity(f, data.Weekly); err != nil {
		return err
	}
	if err := writeSubjects(f, data.Subjects); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func writeActivity(f *excelize.File, weekly []stats.DayActivity) error {
	sheet := "Activity"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create activity sheet: %w", err)
	}

	header := []interface{}{"Day", "Hours"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, day := range weekly {
		row := []interface{}{day.Day, day.Hours}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSubjects(f *excelize.File, subjects []stats.SubjectTotal) error {
	sheet := "Subjects"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create subjects sheet: %w", err)
	}

	header := []interface{}{"Subject", "Minutes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, subject := range subjects {
		row := []interface{}{subject.Subject, subject.Minutes}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
