package models

type EvidenceModel struct {
	ID             uint   `gorm:"primaryKey"`
	CaseID         *uint  `gorm:"index"`
	Reference      string `gorm:"uniqueIndex;size:36;not null"`
	EvidenceType   string `gorm:"size:100;not null"`
	Description    string `gorm:"type:text;not null"`
	Originator     string `gorm:"size:200"`
	Status         string `gorm:"size:20;not null;index"`
	RetentionStart *int64
	RetentionDate  *int64 `gorm:"index"`
	RetentionSent  bool   `gorm:"not null;default:false"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EvidenceModel) TableName() string {
	return "evidence"
}

type EvidenceStatusModel struct {
	ID         uint   `gorm:"primaryKey"`
	EvidenceID uint   `gorm:"not null;index"`
	Status     string `gorm:"size:20;not null"`
	Reason     string `gorm:"type:text"`
	ActorID    uint   `gorm:"not null"`
	Timestamp  int64  `gorm:"not null;index"`
}

func (EvidenceStatusModel) TableName() string {
	return "evidence_status_history"
}

type CustodyModel struct {
	ID         uint   `gorm:"primaryKey"`
	EvidenceID uint   `gorm:"not null;index"`
	Direction  string `gorm:"size:10;not null"`
	Custodian  string `gorm:"size:200;not null"`
	ActorID    uint   `gorm:"not null"`
	Comment    string `gorm:"type:text"`
	ReceiptID  string `gorm:"size:36;not null"`
	Timestamp  int64  `gorm:"not null;index"`
}

func (CustodyModel) TableName() string {
	return "evidence_custody_log"
}
