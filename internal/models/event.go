package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event is a reported occurrence for a monitored company. Events are
// immutable and never deleted; EventRaw carries the original payload
// untouched.
type Event struct {
	BaseModel

	EventType          string         `gorm:"type:varchar(32)" json:"event_type"`
	Company            string         `gorm:"type:varchar(255);index" json:"company"`
	CompanyPAN         string         `gorm:"column:company_pan;type:varchar(32)" json:"company_pan"`
	EventName          string         `gorm:"type:varchar(255);index" json:"event_name"`
	Description        string         `gorm:"type:text" json:"description"`
	Flag               string         `gorm:"type:varchar(64)" json:"flag"`
	RBITrigger         string         `gorm:"column:rbi_trigger;type:varchar(64)" json:"rbi_trigger"`
	EventDate          *time.Time     `json:"event_date"`
	IdentificationDate *time.Time     `json:"identification_date"`
	EventRaw           datatypes.JSON `json:"event_raw"`
}
