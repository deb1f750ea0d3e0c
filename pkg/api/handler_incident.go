package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// createIncidentHandler handles POST /api/v1/incidents.
func (s *Server) createIncidentHandler(c *gin.Context) {
	var req models.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	inc, err := s.incidents.CreateIncident(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toIncidentResponse(inc, false))
}

// getIncidentHandler handles GET /api/v1/incidents/:id.
func (s *Server) getIncidentHandler(c *gin.Context) {
	incidentID := c.Param("id")
	if incidentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident id is required"})
		return
	}

	inc, err := s.incidents.GetIncident(c.Request.Context(), incidentID, true)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toIncidentResponse(inc, true))
}

// listIncidentsHandler handles GET /api/v1/incidents.
func (s *Server) listIncidentsHandler(c *gin.Context) {
	filters := models.IncidentFilters{}

	if v := c.Query("status"); v != "" {
		if err := incident.StatusValidator(incident.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("severity"); v != "" {
		if err := incident.SeverityValidator(incident.Severity(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity: " + v})
			return
		}
		filters.Severity = v
	}
	if v := c.Query("source"); v != "" {
		if err := incident.SourceValidator(incident.Source(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source: " + v})
			return
		}
		filters.Source = v
	}
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

	list, err := s.incidents.ListIncidents(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := IncidentListResponse{
		Incidents:  make([]IncidentResponse, 0, len(list.Incidents)),
		TotalCount: list.TotalCount,
		Limit:      list.Limit,
		Offset:     list.Offset,
	}
	for _, inc := range list.Incidents {
		resp.Incidents = append(resp.Incidents, toIncidentResponse(inc, false))
	}

	c.JSON(http.StatusOK, resp)
}

// updateStatusRequest is the PATCH body for incident status changes.
type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateIncidentStatusHandler handles PATCH /api/v1/incidents/:id/status.
func (s *Server) updateIncidentStatusHandler(c *gin.Context) {
	incidentID := c.Param("id")
	if incidentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident id is required"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	inc, err := s.incidents.UpdateIncidentStatus(c.Request.Context(), incidentID, incident.Status(req.Status))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toIncidentResponse(inc, false))
}

// addTimelineEventHandler handles POST /api/v1/incidents/:id/timeline.
func (s *Server) addTimelineEventHandler(c *gin.Context) {
	incidentID := c.Param("id")
	if incidentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident id is required"})
		return
	}

	var req models.CreateTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	event, err := s.incidents.AddTimelineEvent(c.Request.Context(), incidentID, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTimelineEventResponse(event))
}

// addActionItemRequest is the POST body for adding an action item.
type addActionItemRequest struct {
	Description string `json:"description" binding:"required"`
	Owner       string `json:"owner"`
}

// addActionItemHandler handles POST /api/v1/incidents/:id/action-items.
func (s *Server) addActionItemHandler(c *gin.Context) {
	incidentID := c.Param("id")
	if incidentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident id is required"})
		return
	}

	var req addActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	item, err := s.incidents.AddActionItem(c.Request.Context(), incidentID, req.Description, req.Owner)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toActionItemResponse(item))
}

// completeActionItemHandler handles POST /api/v1/action-items/:id/complete.
func (s *Server) completeActionItemHandler(c *gin.Context) {
	actionItemID := c.Param("id")
	if actionItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action item id is required"})
		return
	}

	item, err := s.incidents.CompleteActionItem(c.Request.Context(), actionItemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toActionItemResponse(item))
}
