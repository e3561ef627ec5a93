package domain

// SmtpSettings is the single-slot SMTP configuration. Saving replaces the
// previous row entirely; reads return the most recently inserted row.
// The password is stored as entered — the settings UI reads it back.
type SmtpSettings struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Secure      bool   `json:"secure"`
	User        string `json:"user"`
	Pass        string `json:"pass"`
	FromAddress string `json:"fromAddress"`
}

// TableName specifies the table name for GORM
func (SmtpSettings) TableName() string {
	return "smtp_settings"
}
