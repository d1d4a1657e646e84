package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeReport is the persisted outcome of analyzing one résumé against one
// job description. Rows are insert-only; a report is never updated or deleted.
type ResumeReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Filename  string    `gorm:"type:text" json:"filename"`
	Score     float64   `gorm:"type:double precision" json:"score"`
	Report    string    `gorm:"type:text" json:"report"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (r *ResumeReport) TableName() string {
	return "resume_reports"
}
