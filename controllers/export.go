// controllers/export.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sakecha-backend/services"
	"sakecha-backend/utils"
)

type ExportController struct {
	reports *services.ReportService
	export  *services.ExportService
}

func NewExportController(reports *services.ReportService, export *services.ExportService) *ExportController {
	return &ExportController{reports: reports, export: export}
}

// MonthlyReport streams the assembled month as a PDF attachment.
func (ec *ExportController) MonthlyReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
		return
	}

	bundle, err := ec.reports.AssemblePeriod(actor, year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := ec.export.MonthlyReportPDF(c.Request.Context(), bundle)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("Monthly_Report_%02d_%d.pdf", month, year)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
