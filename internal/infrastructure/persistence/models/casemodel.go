package models

type CaseModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"uniqueIndex;size:200;not null"`
	Private        bool   `gorm:"not null;default:false"`
	Background     string `gorm:"type:text"`
	Location       string `gorm:"size:200"`
	Classification string `gorm:"size:100"`
	Status         string `gorm:"size:20;not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CaseModel) TableName() string {
	return "cases"
}

type CaseStatusModel struct {
	ID        uint   `gorm:"primaryKey"`
	CaseID    uint   `gorm:"not null;index"`
	Status    string `gorm:"size:20;not null"`
	Reason    string `gorm:"type:text"`
	ActorID   uint   `gorm:"not null"`
	Timestamp int64  `gorm:"not null;index"`
}

func (CaseStatusModel) TableName() string {
	return "case_status_history"
}

type CaseAuthorisationModel struct {
	ID           uint   `gorm:"primaryKey"`
	CaseID       uint   `gorm:"not null;index"`
	Code         string `gorm:"size:20;not null"`
	Reason       string `gorm:"type:text"`
	AuthoriserID uint   `gorm:"not null"`
	Timestamp    int64  `gorm:"not null;index"`
}

func (CaseAuthorisationModel) TableName() string {
	return "case_authorisations"
}
