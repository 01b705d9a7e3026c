package models

type AssignmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	Kind       string `gorm:"size:10;not null;uniqueIndex:idx_assignment_slot"`
	ObjectID   uint   `gorm:"not null;uniqueIndex:idx_assignment_slot"`
	Role       string `gorm:"size:30;not null;uniqueIndex:idx_assignment_slot"`
	UserID     uint   `gorm:"not null;index"`
	AssignedBy uint   `gorm:"not null"`
	Timestamp  int64  `gorm:"not null"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

type AssignmentHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"size:10;not null;index:idx_assignment_history_object"`
	ObjectID  uint   `gorm:"not null;index:idx_assignment_history_object"`
	Role      string `gorm:"size:30;not null"`
	UserID    uint   `gorm:"not null;index"`
	Removed   bool   `gorm:"not null;default:false"`
	ActorID   uint   `gorm:"not null"`
	Timestamp int64  `gorm:"not null;index"`
}

func (AssignmentHistoryModel) TableName() string {
	return "assignment_history"
}
