package mappers

import (
	"custodian/internal/domain/user"
	vo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel, roleRows []models.UserRoleModel) (*user.User, error)
	RoleLogToModels(userID uint, entries []user.RoleEntry) []models.UserRoleModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Forename:     u.Forename(),
		Surname:      u.Surname(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		ManagerID:    u.ManagerID(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel, roleRows []models.UserRoleModel) (*user.User, error) {
	roleLog := make([]user.RoleEntry, 0, len(roleRows))
	for _, row := range roleRows {
		roleLog = append(roleLog, user.RoleEntry{
			Role:      vo.Role(row.Role),
			Removed:   row.Removed,
			ActorID:   row.ActorID,
			Timestamp: millisToTime(row.Timestamp),
		})
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Forename,
		model.Surname,
		model.Email,
		model.PasswordHash,
		model.ManagerID,
		roleLog,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) RoleLogToModels(userID uint, entries []user.RoleEntry) []models.UserRoleModel {
	rows := make([]models.UserRoleModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.UserRoleModel{
			UserID:    userID,
			Role:      entry.Role.String(),
			Removed:   entry.Removed,
			ActorID:   entry.ActorID,
			Timestamp: entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}
