package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:100;not null"`
	Forename     string `gorm:"size:100"`
	Surname      string `gorm:"size:100"`
	Email        string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	ManagerID    *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type UserRoleModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Role      string `gorm:"size:30;not null"`
	Removed   bool   `gorm:"not null;default:false"`
	ActorID   uint   `gorm:"not null"`
	Timestamp int64  `gorm:"not null;index"`
}

func (UserRoleModel) TableName() string {
	return "user_role_log"
}
