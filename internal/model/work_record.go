package model

// WorkRecord is one logged working day. Date is stored as text, either
// "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS"; the time-of-day part, when present,
// is ignored everywhere. Start/End are time-of-day strings, breaks optional.
//
// The web application only reads this table; rows arrive out of band.
type WorkRecord struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Date       string `json:"date" gorm:"size:32;not null"`
	Start      string `json:"start" gorm:"size:16;not null"`
	End        string `json:"end" gorm:"size:16;not null"`
	BreakStart string `json:"break_start,omitempty" gorm:"size:16"`
	BreakEnd   string `json:"break_end,omitempty" gorm:"size:16"`
	TimeChange string `json:"time_change,omitempty" gorm:"size:64"`
	UserID     uint   `json:"user_id" gorm:"not null;index"`
}

// TableName keeps the table name of the deployment this replaces.
func (WorkRecord) TableName() string { return "arbejdstider" }
