package model

// ChangeRequest is a pending correction submitted from the dashboard. It has
// the same shape as a WorkRecord; the pause fields are optional. UserID is
// not backed by a foreign-key constraint, matching the original schema.
type ChangeRequest struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Date       string `json:"date" gorm:"size:32;not null"`
	Start      string `json:"start" gorm:"size:16;not null"`
	End        string `json:"end" gorm:"size:16;not null"`
	PauseStart string `json:"pause_start,omitempty" gorm:"size:16"`
	PauseEnd   string `json:"pause_end,omitempty" gorm:"size:16"`
	UserID     uint   `json:"user_id" gorm:"not null;index"`
}

// TableName keeps the table name of the deployment this replaces.
func (ChangeRequest) TableName() string { return "tidsaendringer" }
