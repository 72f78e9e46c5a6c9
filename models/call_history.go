package models

// CallHistoryTable is the default name of the hosted table holding callback rows
const CallHistoryTable = "call_history"

// CallHistoryRow is one row of the call history table as delivered by the record source.
// Text columns are nullable upstream, so they stay pointers until they are mapped.
type CallHistoryRow struct {
	ID          int64   `gorm:"primarykey" json:"id"`
	Name        *string `gorm:"type:text" json:"name"`
	PhoneNumber *string `gorm:"type:text" json:"phone_number"`
	Notes       *string `gorm:"type:text" json:"notes"`
	MeetingDate *string `gorm:"type:text" json:"meeting_date"`
}

// TableName specifies the table name for CallHistoryRow
func (CallHistoryRow) TableName() string {
	return CallHistoryTable
}
