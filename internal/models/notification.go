package models

import "time"

// Notification is an append-only record of "sender did X to receiver".
// Rows are created as a side effect of likes and comments; the only mutation
// ever applied is flipping the Read flag.
type Notification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Message    string    `gorm:"not null" json:"message"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"sender"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}
