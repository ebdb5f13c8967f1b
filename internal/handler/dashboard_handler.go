package handler

import (
	"net/http"

	"growthpro/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary returns the aggregated dashboard metrics for the owner.
// GET /dashboard/?user_id=
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.svc.Summary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Report returns the raw customer and referral snapshot.
// GET /dashboard/reports?user_id=
func (h *DashboardHandler) Report(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := h.svc.Report(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
