package models

import "gorm.io/datatypes"

// Rule describes a compliance condition that upstream matching evaluates
// against reported events. Rules are immutable once created.
type Rule struct {
	BaseModel

	RuleCode        string                      `gorm:"type:varchar(64);index" json:"rule_code"`
	ChangeReported  string                      `gorm:"type:text" json:"change_reported"`
	Condition       string                      `gorm:"type:text" json:"condition"`
	Severity        string                      `gorm:"type:varchar(32)" json:"severity"`
	PrimaryAction   string                      `gorm:"type:text" json:"primary_action"`
	SecondaryAction string                      `gorm:"type:text" json:"secondary_action"`
	TATDays         int                         `gorm:"column:tat_days" json:"tat_days"`
	AssignedTeam    string                      `gorm:"type:varchar(128)" json:"assigned_team"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	Metadata        datatypes.JSON              `json:"metadata"`
}
