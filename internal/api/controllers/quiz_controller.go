package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"credimatch/internal/models/request_models"
	"credimatch/internal/quiz"
	"credimatch/internal/services"
	"credimatch/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (q *QuizController) StartSession(c *gin.Context) {
	var req request_models.StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "landing_id is required")
		return
	}

	state, err := q.quizService.Start(c.Request.Context(), req.LandingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if state == nil {
		// No quiz configured for this landing. A valid outcome: the client
		// simply does not open the modal.
		utils.RespondSuccess(c, nil, "No quiz configured for this landing")
		return
	}

	utils.RespondSuccess(c, state, "Quiz session started")
}

func (q *QuizController) GetSession(c *gin.Context) {
	state, err := q.quizService.Get(c.Param("sessionId"))
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Quiz session fetched")
}

func (q *QuizController) Answer(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "option_ids is required")
		return
	}

	state, err := q.quizService.Answer(c.Param("sessionId"), req.OptionIDs)
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Answer recorded")
}

func (q *QuizController) Back(c *gin.Context) {
	state, err := q.quizService.Back(c.Param("sessionId"))
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Moved to previous question")
}

func (q *QuizController) Restart(c *gin.Context) {
	state, err := q.quizService.Restart(c.Param("sessionId"))
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Quiz restarted")
}

func (q *QuizController) Complete(c *gin.Context) {
	results, err := q.quizService.Complete(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, results, "Recommendations ready")
}

func (q *QuizController) Choose(c *gin.Context) {
	var req request_models.ChooseProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "product_id is required")
		return
	}

	seed, err := q.quizService.Choose(c.Param("sessionId"), req.ProductID)
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, seed, "Product chosen")
}

func (q *QuizController) Browse(c *gin.Context) {
	browse, err := q.quizService.Browse(c.Param("sessionId"))
	if err != nil {
		q.handleQuizError(c, err)
		return
	}
	utils.RespondSuccess(c, browse, "Catalog filters ready")
}

func (q *QuizController) Cancel(c *gin.Context) {
	q.quizService.Cancel(c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Quiz session closed")
}

// handleQuizError maps session state machine errors before falling through
// to the shared service error mapping.
func (q *QuizController) handleQuizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrUnknownOption):
		utils.RespondError(c, http.StatusBadRequest, "Selected option does not belong to the current question")
	case errors.Is(err, quiz.ErrNothingToGoBack):
		utils.RespondError(c, http.StatusConflict, "Already at the first question")
	case errors.Is(err, quiz.ErrQuizIncomplete):
		utils.RespondError(c, http.StatusConflict, "Not every question has been answered")
	case errors.Is(err, quiz.ErrNoResults):
		utils.RespondError(c, http.StatusConflict, "Results are not available yet")
	case errors.Is(err, quiz.ErrProductNotInList):
		utils.RespondError(c, http.StatusNotFound, "Product is not among the recommendations")
	case errors.Is(err, quiz.ErrSessionFinished):
		utils.RespondError(c, http.StatusConflict, "Quiz session already finished")
	default:
		utils.HandleServiceError(c, err)
	}
}
