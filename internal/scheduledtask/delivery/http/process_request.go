package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("id is required")
	}
	return req, req.validate()
}

// processToggleReq binds the toggle request body + URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("id is required")
	}
	return req, nil
}

// processLogsReq binds the logs query parameters.
func (h *handler) processLogsReq(c *gin.Context) (logsReq, error) {
	var req logsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return req, nil
}
