package tasks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/task/usecases"
	"custodian/internal/shared/logger"
	"custodian/internal/shared/utils"
)

// TaskHandler exposes the task workflow endpoints.
type TaskHandler struct {
	createTaskUC          createTaskUseCase
	getTaskUC             getTaskUseCase
	listTasksUC           listTasksUseCase
	updateTaskUC          updateTaskUseCase
	setTaskStatusUC       setTaskStatusUseCase
	addNoteUC             addNoteUseCase
	assignInvestigatorsUC assignInvestigatorsUseCase
	assignSelfUC          assignSelfUseCase
	assignQAUC            assignQAUseCase
	requestQAUC           requestQAUseCase
	passQAUC              passQAUseCase
	failQAUC              failQAUseCase
	logger                logger.Interface
}

func NewTaskHandler(
	createTaskUC createTaskUseCase,
	getTaskUC getTaskUseCase,
	listTasksUC listTasksUseCase,
	updateTaskUC updateTaskUseCase,
	setTaskStatusUC setTaskStatusUseCase,
	addNoteUC addNoteUseCase,
	assignInvestigatorsUC assignInvestigatorsUseCase,
	assignSelfUC assignSelfUseCase,
	assignQAUC assignQAUseCase,
	requestQAUC requestQAUseCase,
	passQAUC passQAUseCase,
	failQAUC failQAUseCase,
	log logger.Interface,
) *TaskHandler {
	return &TaskHandler{
		createTaskUC:          createTaskUC,
		getTaskUC:             getTaskUC,
		listTasksUC:           listTasksUC,
		updateTaskUC:          updateTaskUC,
		setTaskStatusUC:       setTaskStatusUC,
		addNoteUC:             addNoteUC,
		assignInvestigatorsUC: assignInvestigatorsUC,
		assignSelfUC:          assignSelfUC,
		assignQAUC:            assignQAUC,
		requestQAUC:           requestQAUC,
		passQAUC:              passQAUC,
		failQAUC:              failQAUC,
		logger:                log,
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTaskUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTaskUC.Execute(c.Request.Context(), usecases.GetTaskQuery{
		TaskID:  taskID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q := parseListTasksQuery(c, actorID)
	result, err := h.listTasksUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, q.Page, q.PageSize)
}

// UpdateTask handles PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTaskUC.Execute(c.Request.Context(), usecases.UpdateTaskCommand{
		TaskID:     taskID,
		Name:       req.Name,
		Background: req.Background,
		Location:   req.Location,
		ActorID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated successfully", result)
}

// SetStatus handles POST /tasks/:id/status
func (h *TaskHandler) SetStatus(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setTaskStatusUC.Execute(c.Request.Context(), usecases.SetTaskStatusCommand{
		TaskID:  taskID,
		Status:  req.Status,
		Note:    req.Note,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddNote handles POST /tasks/:id/notes
func (h *TaskHandler) AddNote(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		TaskID:  taskID,
		Note:    req.Note,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}

// AssignInvestigators handles POST /tasks/:id/investigators
func (h *TaskHandler) AssignInvestigators(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignInvestigatorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignInvestigatorsUC.Execute(c.Request.Context(), usecases.AssignInvestigatorsCommand{
		TaskID:      taskID,
		PrincipalID: req.PrincipalID,
		SecondaryID: req.SecondaryID,
		ActorID:     actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investigators assigned successfully", result)
}

// AssignSelf handles POST /tasks/:id/claim
func (h *TaskHandler) AssignSelf(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignSelfUC.Execute(c.Request.Context(), usecases.AssignSelfCommand{
		TaskID:  taskID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task claimed successfully", result)
}

// AssignQA handles POST /tasks/:id/qa/reviewers
func (h *TaskHandler) AssignQA(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignQARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignQAUC.Execute(c.Request.Context(), usecases.AssignQACommand{
		TaskID:      taskID,
		PrincipalID: req.PrincipalID,
		SecondaryID: req.SecondaryID,
		Note:        req.Note,
		ActorID:     actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "QA reviewers assigned successfully", result)
}

// RequestQA handles POST /tasks/:id/qa/request
func (h *TaskHandler) RequestQA(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req QANoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.requestQAUC.Execute(c.Request.Context(), usecases.RequestQACommand{
		TaskID:  taskID,
		Note:    req.Note,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "QA requested successfully", result)
}

// PassQA handles POST /tasks/:id/qa/pass
func (h *TaskHandler) PassQA(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req QANoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.passQAUC.Execute(c.Request.Context(), usecases.PassQACommand{
		TaskID:  taskID,
		Note:    req.Note,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// FailQA handles POST /tasks/:id/qa/fail
func (h *TaskHandler) FailQA(c *gin.Context) {
	taskID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req QANoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.failQAUC.Execute(c.Request.Context(), usecases.FailQACommand{
		TaskID:  taskID,
		Note:    req.Note,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TaskHandler) parseTarget(c *gin.Context) (taskID, actorID uint, err error) {
	taskID, err = utils.ParseIDParam(c, "id", "task")
	if err != nil {
		return 0, 0, err
	}
	actorID, err = utils.CurrentUserID(c)
	if err != nil {
		return 0, 0, err
	}
	return taskID, actorID, nil
}
