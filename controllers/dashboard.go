// controllers/dashboard.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sakecha-backend/services"
)

// DashboardController serves the administrator overview: all recent
// reports and reorder requests, the 7-day top booths, and month-to-date
// sales across the network.
type DashboardController struct {
	reports  *services.ReportService
	reorders *services.ReorderService
}

func NewDashboardController(reports *services.ReportService, reorders *services.ReorderService) *DashboardController {
	return &DashboardController{reports: reports, reorders: reorders}
}

func (dc *DashboardController) Overview(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	dailyReports, err := dc.reports.List(actor, uuid.Nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	reorderRequests, err := dc.reorders.List(actor, uuid.Nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	topBooths, err := dc.reports.TopBooths(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	monthToDate, err := dc.reports.MonthToDateSales(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dailyReports":           dailyReports,
		"reorderRequests":        reorderRequests,
		"topBooths":              topBooths,
		"totalSalesCurrentMonth": monthToDate,
	})
}
