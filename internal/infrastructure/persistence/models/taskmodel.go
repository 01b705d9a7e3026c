package models

type TaskModel struct {
	ID            uint   `gorm:"primaryKey"`
	CaseID        uint   `gorm:"not null;index"`
	Name          string `gorm:"size:200;not null"`
	Background    string `gorm:"type:text"`
	Location      string `gorm:"size:200"`
	Status        string `gorm:"size:30;not null;index"`
	PrincipalQAID *uint  `gorm:"index"`
	SecondaryQAID *uint  `gorm:"index"`
	PrincQAPassed bool   `gorm:"not null;default:false"`
	SeconQAPassed bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type TaskStatusModel struct {
	ID        uint   `gorm:"primaryKey"`
	TaskID    uint   `gorm:"not null;index"`
	Status    string `gorm:"size:30;not null"`
	Note      string `gorm:"type:text"`
	ActorID   uint   `gorm:"not null"`
	Timestamp int64  `gorm:"not null;index"`
}

func (TaskStatusModel) TableName() string {
	return "task_status_history"
}
