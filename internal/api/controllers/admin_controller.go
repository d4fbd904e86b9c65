package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"credimatch/internal/models/request_models"
	"credimatch/internal/models/response_models"
	"credimatch/internal/services"
	"credimatch/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := a.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token}, "Logged in")
}

func (a *AdminController) UpdateResultsCount(c *gin.Context) {
	quizID := c.Param("quizId")
	if quizID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Quiz ID is required")
		return
	}

	var req request_models.UpdateQuizConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "results_count must be between 1 and 20")
		return
	}

	config, err := a.adminService.UpdateResultsCount(c.Request.Context(), quizID, req.ResultsCount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, config, "Results count updated")
}
