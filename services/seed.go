package services

import (
	"fmt"

	"recall/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// demoCallRows are the sample callbacks used for local development
var demoCallRows = []models.CallHistoryRow{
	{
		ID:          1,
		Name:        seedStr("John Smith"),
		PhoneNumber: seedStr("+1 (555) 123-4567"),
		Notes:       seedStr("Interested in premium package. Wants to discuss pricing options."),
		MeetingDate: seedStr("2025-10-05T14:00:00"),
	},
	{
		ID:          2,
		Name:        seedStr("Sarah Johnson"),
		PhoneNumber: seedStr("+1 (555) 987-6543"),
		Notes:       seedStr("Follow-up call regarding previous order. Has questions about delivery."),
		MeetingDate: seedStr("2025-10-05T16:30:00"),
	},
	{
		ID:          3,
		Name:        seedStr("Mike Wilson"),
		PhoneNumber: seedStr("+1 (555) 456-7890"),
		Notes:       seedStr("Requested technical support for product installation."),
		MeetingDate: seedStr("2025-10-04T10:00:00"),
	},
	{
		ID:          4,
		Name:        seedStr("Emily Davis"),
		PhoneNumber: seedStr("+1 (555) 321-0987"),
		Notes:       seedStr("New customer inquiry about services. Wants product demonstration."),
	},
}

// SeedDemoCalls inserts the demo callbacks into an empty call history table.
// It is a no-op when the table already has rows.
func SeedDemoCalls(database *gorm.DB, table string) (int, error) {
	if table == "" {
		table = models.CallHistoryTable
	}

	var count int64
	if err := database.Table(table).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count call history: %w", err)
	}
	if count > 0 {
		zap.L().Info("call history already has rows, skipping seed", zap.Int64("rows", count))
		return 0, nil
	}

	rows := make([]models.CallHistoryRow, len(demoCallRows))
	copy(rows, demoCallRows)
	if err := database.Table(table).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed call history: %w", err)
	}

	zap.L().Info("seeded demo call history", zap.Int("rows", len(rows)))
	return len(rows), nil
}

func seedStr(s string) *string {
	return &s
}
