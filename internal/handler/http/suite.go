package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// SuiteHandler serves the fixed artist suite directory.
type SuiteHandler struct {
	suiteService *service.SuiteService
}

// NewSuiteHandler creates a SuiteHandler.
func NewSuiteHandler(suiteService *service.SuiteService) *SuiteHandler {
	return &SuiteHandler{suiteService: suiteService}
}

// List returns every suite with its artwork count.
func (h *SuiteHandler) List(c *gin.Context) {
	details, err := h.suiteService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	suites := make([]SuiteResponse, 0, len(details))
	for i := range details {
		suites = append(suites, toSuiteResponse(&details[i]))
	}
	c.JSON(http.StatusOK, suites)
}

// Get returns one suite by id.
func (h *SuiteHandler) Get(c *gin.Context) {
	details, err := h.suiteService.Get(c.Request.Context(), c.Param("suiteId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSuiteResponse(details))
}
