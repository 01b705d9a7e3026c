package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"custodian/internal/domain/user"
	vo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/infrastructure/persistence/mappers"
	"custodian/internal/infrastructure/persistence/models"
	db "custodian/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return err
	}

	return r.appendRoleRows(tx, u)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces the nullable manager column through.
	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("Forename", "Surname", "Email", "PasswordHash", "ManagerID", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return r.appendRoleRows(tx, u)
}

func (r *UserRepository) appendRoleRows(tx *gorm.DB, u *user.User) error {
	var count int64
	if err := tx.Model(&models.UserRoleModel{}).
		Where("user_id = ?", u.ID()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count user role rows: %w", err)
	}

	rows := r.mapper.RoleLogToModels(u.ID(), u.RoleLog())
	if int(count) < len(rows) {
		if err := tx.Create(rows[count:]).Error; err != nil {
			return fmt.Errorf("failed to append user role rows: %w", err)
		}
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *UserRepository) loadAggregate(tx *gorm.DB, model *models.UserModel) (*user.User, error) {
	var roleRows []models.UserRoleModel
	if err := tx.
		Where("user_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&roleRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load user role log: %w", err)
	}

	return r.mapper.ToDomain(model, roleRows)
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Role != nil {
		query = query.Where("id IN (?)", activeRoleSubquery(tx, *filter.Role))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var userModels []models.UserModel
	if err := query.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.loadAggregate(tx, &userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *UserRepository) ListByActiveRole(ctx context.Context, role vo.Role) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.
		Where("id IN (?)", activeRoleSubquery(tx, role)).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.loadAggregate(tx, &userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// activeRoleSubquery selects the user IDs whose newest toggle row for the
// role is a grant.
func activeRoleSubquery(tx *gorm.DB, role vo.Role) *gorm.DB {
	latest := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.UserRoleModel{}).
		Select("user_id, MAX(id) AS max_id").
		Where("role = ?", role.String()).
		Group("user_id")

	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.UserRoleModel{}).
		Select("user_role_log.user_id").
		Joins("JOIN (?) latest ON latest.max_id = user_role_log.id", latest).
		Where("user_role_log.removed = ?", false)
}
