package services

import (
	"bytes"
	"fmt"

	"recall/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Callbacks"

var exportHeaders = []string{"ID", "Caller", "Phone", "Scheduled", "Status", "Summary", "Duration"}

// ExportCallsXLSX writes the given calls to a single-sheet workbook.
// Scheduled shows the same label as the dashboard, so unparsable dates read "No date specified".
func ExportCallsXLSX(calls []models.CallLog, stats models.DashboardStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	for i, call := range calls {
		row := i + 2
		duration := ""
		if call.Duration != nil {
			duration = *call.Duration
		}
		values := []interface{}{
			call.ID,
			call.CallerName,
			call.CallerPhone,
			FormatDisplayDate(call.ScheduledTime),
			string(call.Status),
			call.Summary,
			duration,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	// Totals block below the data
	summaryRow := len(calls) + 3
	summary := [][2]interface{}{
		{"Total Callbacks", stats.Total},
		{"Pending", stats.Pending},
		{"Completed", stats.Completed},
		{"Avg Duration", stats.AvgDuration},
	}
	for i, line := range summary {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", summaryRow+i), line[0])
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", summaryRow+i), line[1])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(exportSheet, "A1", "G1", headerStyle)
	f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("A%d", summaryRow+len(summary)-1), headerStyle)
	f.SetColWidth(exportSheet, "B", "D", 22)
	f.SetColWidth(exportSheet, "F", "F", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
