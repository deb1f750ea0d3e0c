package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getPostmortemHandler handles GET /api/v1/postmortems/:id.
func (s *Server) getPostmortemHandler(c *gin.Context) {
	postmortemID := c.Param("id")
	if postmortemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postmortem id is required"})
		return
	}

	pm, err := s.postmortems.GetPostmortem(c.Request.Context(), postmortemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostmortemResponse(pm, true))
}

// publishPostmortemHandler handles POST /api/v1/postmortems/:id/publish.
// Publishing an already-published postmortem is a no-op.
func (s *Server) publishPostmortemHandler(c *gin.Context) {
	postmortemID := c.Param("id")
	if postmortemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postmortem id is required"})
		return
	}

	pm, err := s.postmortems.Publish(c.Request.Context(), postmortemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostmortemResponse(pm, false))
}

// listIncidentPostmortemsHandler handles GET /api/v1/incidents/:id/postmortems.
func (s *Server) listIncidentPostmortemsHandler(c *gin.Context) {
	incidentID := c.Param("id")
	if incidentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident id is required"})
		return
	}

	pms, err := s.postmortems.ListByIncident(c.Request.Context(), incidentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := make([]PostmortemResponse, 0, len(pms))
	for _, pm := range pms {
		resp = append(resp, toPostmortemResponse(pm, false))
	}

	c.JSON(http.StatusOK, resp)
}
