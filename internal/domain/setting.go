package domain

// SettingEmailRecipient is the key of the primary notification address
const SettingEmailRecipient = "email_recipient"

// Setting is a key/value configuration row, at most one per key
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:200;not null" json:"value"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
