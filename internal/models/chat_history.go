package models

// ChatSource records which path produced an advisory response.
type ChatSource string

const (
	ChatSourceModel    ChatSource = "model"
	ChatSourceFallback ChatSource = "fallback"
)

// ChatHistory is an append-only log of advisory exchanges.
type ChatHistory struct {
	Base
	UserID   string     `gorm:"size:36;not null;index" json:"user_id"`
	Message  string     `gorm:"type:text;not null" json:"message"`
	Response string     `gorm:"type:text;not null" json:"response"`
	Source   ChatSource `gorm:"size:20;not null" json:"source"`
}

// TableName keeps the singular table name used by the SQL migrations.
func (ChatHistory) TableName() string { return "chat_history" }
