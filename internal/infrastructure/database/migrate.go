package database

import (
	"gorm.io/gorm"

	"custodian/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates every table the application persists to.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserRoleModel{},
		&models.CaseModel{},
		&models.CaseStatusModel{},
		&models.CaseAuthorisationModel{},
		&models.TaskModel{},
		&models.TaskStatusModel{},
		&models.EvidenceModel{},
		&models.EvidenceStatusModel{},
		&models.CustodyModel{},
		&models.AssignmentModel{},
		&models.AssignmentHistoryModel{},
	)
}
