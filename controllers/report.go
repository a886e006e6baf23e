// controllers/report.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sakecha-backend/services"
	"sakecha-backend/utils"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

type SubmitReportInput struct {
	ReportDate    string  `json:"reportDate" binding:"required"`
	TotalSales    float64 `json:"totalSales"`
	CashCollected float64 `json:"cashCollected"`
	BankedIn      float64 `json:"bankedIn"`
	Expenses      float64 `json:"expenses"`
	Description   string  `json:"description"`
}

func (in SubmitReportInput) toService() (services.SubmitReportInput, error) {
	date, err := utils.ParseReportDate(in.ReportDate)
	if err != nil {
		return services.SubmitReportInput{}, services.ErrInvalidInput
	}
	return services.SubmitReportInput{
		ReportDate:    date,
		TotalSales:    in.TotalSales,
		CashCollected: in.CashCollected,
		BankedIn:      in.BankedIn,
		Expenses:      in.Expenses,
		Description:   in.Description,
	}, nil
}

func (rc *ReportController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var input SubmitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svcInput, err := input.toService()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	report, err := rc.reports.Submit(actor, svcInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (rc *ReportController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	owner := uuid.Nil
	if raw := c.Query("franchiseeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid franchisee ID format")
			return
		}
		owner = parsed
	}

	reports, err := rc.reports.List(actor, owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (rc *ReportController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := rc.reports.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input SubmitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svcInput, err := input.toService()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	report, err := rc.reports.Update(actor, id, svcInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rc.reports.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
