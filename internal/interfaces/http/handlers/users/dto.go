package users

import (
	"custodian/internal/application/user/usecases"
)

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Forename string `json:"forename" binding:"required,max=100"`
	Surname  string `json:"surname" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterUserRequest) ToCommand(actorID uint) usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username: r.Username,
		Forename: r.Forename,
		Surname:  r.Surname,
		Email:    r.Email,
		Password: r.Password,
		ActorID:  actorID,
	}
}

type UpdateUserRequest struct {
	Forename string `json:"forename" binding:"max=100"`
	Surname  string `json:"surname" binding:"max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetManagerRequest struct {
	// ManagerID nil clears the manager.
	ManagerID *uint `json:"manager_id"`
}
