// controllers/attendance.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sakecha-backend/services"
	"sakecha-backend/utils"
)

type AttendanceController struct {
	attendance *services.AttendanceService
}

func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendance: attendance}
}

type LogAttendanceInput struct {
	DailyReportID  string `json:"dailyReportId" binding:"required"`
	TeamMemberName string `json:"teamMemberName" binding:"required"`
	IsPresent      bool   `json:"isPresent"`
	Remarks        string `json:"remarks"`
}

type UpdateAttendanceInput struct {
	TeamMemberName *string `json:"teamMemberName"`
	IsPresent      *bool   `json:"isPresent"`
	Remarks        *string `json:"remarks"`
}

func (atc *AttendanceController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var input LogAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reportID, err := uuid.Parse(input.DailyReportID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	entry, err := atc.attendance.Log(actor, reportID, input.TeamMemberName, input.IsPresent, input.Remarks)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (atc *AttendanceController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var filter services.AttendanceFilter
	if raw := c.Query("franchiseeId"); raw != "" {
		owner, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid franchisee ID format")
			return
		}
		filter.Owner = owner
	}
	if raw := c.Query("from"); raw != "" {
		from, err := utils.ParseReportDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := utils.ParseReportDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		filter.To = to
	}

	entries, err := atc.attendance.List(actor, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (atc *AttendanceController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	entry, err := atc.attendance.Update(actor, id, services.UpdateAttendanceInput{
		TeamMemberName: input.TeamMemberName,
		IsPresent:      input.IsPresent,
		Remarks:        input.Remarks,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (atc *AttendanceController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := atc.attendance.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance entry deleted successfully"})
}
