package http

import (
	"gorm.io/gorm"

	caseUsecases "custodian/internal/application/casefile/usecases"
	evidenceUsecases "custodian/internal/application/evidence/usecases"
	taskUsecases "custodian/internal/application/task/usecases"
	userUsecases "custodian/internal/application/user/usecases"
	"custodian/internal/domain/permission"
	"custodian/internal/infrastructure/auth"
	"custodian/internal/infrastructure/config"
	"custodian/internal/infrastructure/email"
	"custodian/internal/infrastructure/repository"
	authHandler "custodian/internal/interfaces/http/handlers/auth"
	caseHandler "custodian/internal/interfaces/http/handlers/cases"
	evidenceHandler "custodian/internal/interfaces/http/handlers/evidence"
	taskHandler "custodian/internal/interfaces/http/handlers/tasks"
	userHandler "custodian/internal/interfaces/http/handlers/users"
	"custodian/internal/interfaces/http/middleware"
	shareddb "custodian/internal/shared/db"
	"custodian/internal/shared/logger"
)

// container wires repositories, services, use cases and handlers.
type container struct {
	authHandler     *authHandler.AuthHandler
	caseHandler     *caseHandler.CaseHandler
	taskHandler     *taskHandler.TaskHandler
	evidenceHandler *evidenceHandler.EvidenceHandler
	userHandler     *userHandler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// buildContainer constructs the full dependency graph. The permission
// registry is validated up front so a missing rule fails startup instead of
// a request.
func buildContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*container, error) {
	caseRepo := repository.NewCaseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	evidenceRepo := repository.NewEvidenceRepository(db)
	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	checkers := permission.NewCheckers(assignmentRepo, taskRepo)
	registry := permission.DefaultRegistry(checkers)
	if err := registry.Validate(permission.RequiredRules()); err != nil {
		return nil, err
	}
	permSvc := permission.NewService(registry)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	sender := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	notifier := email.NewNotifier(sender, userRepo, assignmentRepo, log)

	c := &container{
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
	}

	c.authHandler = authHandler.NewAuthHandler(
		userUsecases.NewAuthenticateUseCase(userRepo, hasher, jwtSvc, log),
		log,
	)

	c.caseHandler = caseHandler.NewCaseHandler(
		caseUsecases.NewCreateCaseUseCase(caseRepo, userRepo, assignmentRepo, txMgr, permSvc, notifier, log),
		caseUsecases.NewGetCaseUseCase(caseRepo, userRepo, permSvc, log),
		caseUsecases.NewListCasesUseCase(caseRepo, userRepo, permSvc, log),
		caseUsecases.NewUpdateCaseUseCase(caseRepo, userRepo, permSvc, log),
		caseUsecases.NewSetCaseStatusUseCase(caseRepo, userRepo, permSvc, notifier, log),
		caseUsecases.NewCloseCaseUseCase(caseRepo, userRepo, permSvc, notifier, log),
		caseUsecases.NewArchiveCaseUseCase(caseRepo, userRepo, permSvc, notifier, log),
		caseUsecases.NewAuthoriseCaseUseCase(caseRepo, userRepo, permSvc, notifier, log),
		caseUsecases.NewAssignCaseRoleUseCase(caseRepo, userRepo, assignmentRepo, permSvc, notifier, log),
		log,
	)

	c.taskHandler = taskHandler.NewTaskHandler(
		taskUsecases.NewCreateTaskUseCase(taskRepo, caseRepo, userRepo, permSvc, log),
		taskUsecases.NewGetTaskUseCase(taskRepo, caseRepo, userRepo, permSvc, log),
		taskUsecases.NewListTasksUseCase(taskRepo, caseRepo, userRepo, permSvc, log),
		taskUsecases.NewUpdateTaskUseCase(taskRepo, caseRepo, userRepo, permSvc, log),
		taskUsecases.NewSetTaskStatusUseCase(taskRepo, caseRepo, userRepo, permSvc, notifier, log),
		taskUsecases.NewAddNoteUseCase(taskRepo, caseRepo, userRepo, permSvc, log),
		taskUsecases.NewAssignInvestigatorsUseCase(taskRepo, caseRepo, userRepo, assignmentRepo, permSvc, notifier, log),
		taskUsecases.NewAssignSelfUseCase(taskRepo, caseRepo, userRepo, assignmentRepo, txMgr, permSvc, notifier, log),
		taskUsecases.NewAssignQAUseCase(taskRepo, caseRepo, userRepo, assignmentRepo, permSvc, notifier, log),
		taskUsecases.NewRequestQAUseCase(taskRepo, caseRepo, userRepo, permSvc, notifier, log),
		taskUsecases.NewPassQAUseCase(taskRepo, caseRepo, userRepo, permSvc, notifier, log),
		taskUsecases.NewFailQAUseCase(taskRepo, caseRepo, userRepo, permSvc, notifier, log),
		log,
	)

	c.evidenceHandler = evidenceHandler.NewEvidenceHandler(
		evidenceUsecases.NewCreateEvidenceUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		evidenceUsecases.NewGetEvidenceUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		evidenceUsecases.NewListEvidenceUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		evidenceUsecases.NewUpdateEvidenceUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		evidenceUsecases.NewSetEvidenceStatusUseCase(evidenceRepo, caseRepo, userRepo, permSvc, notifier, cfg.Retention.PeriodMonths, log),
		evidenceUsecases.NewCheckInUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		evidenceUsecases.NewCheckOutUseCase(evidenceRepo, caseRepo, userRepo, permSvc, log),
		log,
	)

	c.userHandler = userHandler.NewUserHandler(
		userUsecases.NewRegisterUserUseCase(userRepo, hasher, permSvc, log),
		userUsecases.NewGetUserUseCase(userRepo, permSvc, log),
		userUsecases.NewListUsersUseCase(userRepo, permSvc, log),
		userUsecases.NewUpdateUserUseCase(userRepo, hasher, permSvc, log),
		userUsecases.NewGrantRoleUseCase(userRepo, permSvc, notifier, log),
		userUsecases.NewRevokeRoleUseCase(userRepo, permSvc, notifier, log),
		userUsecases.NewSetManagerUseCase(userRepo, permSvc, log),
		log,
	)

	return c, nil
}
