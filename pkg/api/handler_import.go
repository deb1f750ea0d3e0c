package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// createSessionHandler handles POST /api/v1/import/sessions.
// Expects a multipart form with one or more "files" parts and an optional
// "auto_publish" field.
func (s *Server) createSessionHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request must be multipart/form-data: " + err.Error()})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	req := models.CreateImportSessionRequest{}
	if v := c.PostForm("auto_publish"); v != "" {
		autoPublish, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auto_publish: must be true or false"})
			return
		}
		req.AutoPublish = autoPublish
	}

	for _, fh := range fileHeaders {
		if fh.Size > services.MaxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "file too large: " + fh.Filename,
			})
			return
		}

		f, openErr := fh.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
			return
		}
		data, readErr := io.ReadAll(io.LimitReader(f, services.MaxUploadBytes+1))
		_ = f.Close()
		if readErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
			return
		}
		if int64(len(data)) > services.MaxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large: " + fh.Filename})
			return
		}

		req.Files = append(req.Files, models.UploadedFile{
			Name: fh.Filename,
			Type: fh.Header.Get("Content-Type"),
			Data: data,
		})
	}

	session, err := s.imports.CreateSession(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	created, err := s.imports.GetSession(c.Request.Context(), session.ID, true)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(created, true))
}

// listSessionsHandler handles GET /api/v1/import/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := models.SessionFilters{}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}

	list, err := s.imports.ListSessions(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := SessionListResponse{
		Sessions:   make([]SessionResponse, 0, len(list.Sessions)),
		TotalCount: list.TotalCount,
		Limit:      list.Limit,
		Offset:     list.Offset,
	}
	for _, session := range list.Sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(session, false))
	}

	c.JSON(http.StatusOK, resp)
}

// getSessionHandler handles GET /api/v1/import/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	session, err := s.imports.GetSession(c.Request.Context(), sessionID, true)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session, true))
}

// getItemHandler handles GET /api/v1/import/items/:id.
func (s *Server) getItemHandler(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}

	item, err := s.imports.GetItem(c.Request.Context(), itemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// submitAnswersRequest is the POST body for answering clarifying questions.
type submitAnswersRequest struct {
	Answers []models.QuestionAnswer `json:"answers" binding:"required"`
}

// submitAnswersHandler handles POST /api/v1/import/items/:id/answers.
func (s *Server) submitAnswersHandler(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}

	var req submitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one answer is required"})
		return
	}

	item, err := s.imports.SubmitAnswers(c.Request.Context(), itemID, req.Answers)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// retryItemHandler handles POST /api/v1/import/items/:id/retry.
func (s *Server) retryItemHandler(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}

	item, err := s.imports.RetryItem(c.Request.Context(), itemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// retryFailedHandler handles POST /api/v1/import/sessions/:id/retry-failed.
func (s *Server) retryFailedHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	retried, err := s.imports.RetryAllFailed(c.Request.Context(), sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RetryFailedResponse{
		SessionID:    sessionID,
		RetriedItems: retried,
	})
}
