package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
	"finbook/internal/scheduledtask"
	"finbook/pkg/response"
)

// Create godoc
// @Summary     Create a scheduled task
// @Description Creates a recurring financial task and seeds its next run time.
// @Tags        ScheduledTasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduled-tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List scheduled tasks
// @Description Returns a paginated list of the user's scheduled tasks.
// @Tags        ScheduledTasks
// @Produce     json
// @Param       enabled query bool false "Filter by enabled flag"
// @Param       limit   query int  false "Page size (default: 20)"
// @Param       offset  query int  false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduled-tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get scheduled task detail
// @Description Returns a single scheduled task by its ID.
// @Tags        ScheduledTasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, h.mapError(scheduledtask.ErrTaskNotFound))
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a scheduled task
// @Description Partially updates a task. Schedule changes recompute the next run time.
// @Tags        ScheduledTasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a scheduled task
// @Description Permanently removes a task and its execution logs.
// @Tags        ScheduledTasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, h.mapError(scheduledtask.ErrTaskNotFound))
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Enable or disable a scheduled task
// @Description Toggles the enabled flag. Re-enabling reseeds the next run time.
// @Tags        ScheduledTasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body toggleReq true "Enabled flag"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, middleware.GetScope(c), req.ID, *req.Enabled)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Execute godoc
// @Summary     Execute a task now
// @Description Runs one task immediately and advances its schedule.
// @Tags        ScheduledTasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} executeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id}/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExecuteNow(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteNow: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newExecuteResp(output))
}

// Logs godoc
// @Summary     List task execution logs
// @Description Returns the execution history of one task, newest first.
// @Tags        ScheduledTasks
// @Produce     json
// @Param       id     path  string true  "Task ID"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listLogsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduled-tasks/{id}/logs [GET]
func (h *handler) Logs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListLogs(ctx, middleware.GetScope(c), scheduledtask.ListLogsInput{
		TaskID: c.Param("id"),
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLogs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListLogsResp(output))
}
