package models

// Notification is an in-app notification emitted when an alert transitions.
// User holds the target identity (email); the column is target_user because
// "user" is reserved in postgres and mysql. Only the read flag ever changes
// after creation.
type Notification struct {
	BaseModel

	User    string `gorm:"column:target_user;type:varchar(255);not null;index" json:"user"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	AlertID string `gorm:"type:uuid;index" json:"alert_id"`
	Read    bool   `gorm:"default:false;index" json:"read"`
}
