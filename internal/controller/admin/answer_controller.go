package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/service"
)

// AnswerController manages individual answers and serves survey results.
type AnswerController struct {
	answerService   service.AnswerService
	responseService service.ResponseService
	insightService  service.InsightService
}

func NewAnswerController(as service.AnswerService, rs service.ResponseService, is service.InsightService) *AnswerController {
	return &AnswerController{answerService: as, responseService: rs, insightService: is}
}

func (c *AnswerController) RegisterRoutes(r gin.IRouter) {
	r.GET("/answer", c.GetAllAnswers)
	r.GET("/answer/:answerId", c.GetAnswer)
	r.PUT("/answer/:answerId", c.UpdateAnswer)
	r.DELETE("/answer/:answerId", c.DeleteAnswer)

	r.GET("/question/:questionId/answer", c.GetQuestionAnswers)
	r.POST("/question/:questionId/answer", c.CreateAnswer)
	r.DELETE("/question/:questionId/answer", c.DeleteQuestionAnswers)

	r.GET("/surveys/:surveyId/answer", c.GetSurveyAnswers)
	r.GET("/surveys/:surveyId/results/full", c.GetFullResults)
	r.GET("/surveys/:surveyId/results", c.GetResultsByUser)
	r.GET("/surveys/:surveyId/results/insight", c.GetInsight)
}

// GetAllAnswers godoc
// @Summary List all answers
// @Tags Admin - Answers
// @Produce json
// @Success 200 {array} dto.AnswerResponse
// @Router /answer [get]
func (c *AnswerController) GetAllAnswers(ctx *gin.Context) {
	answers, err := c.answerService.GetAllAnswers(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetAnswer godoc
// @Summary Get an answer
// @Tags Admin - Answers
// @Produce json
// @Param answerId path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Success 204 "Answer not found"
// @Router /answer/{answerId} [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "answerId")
	if !ok {
		return
	}
	answer, err := c.answerService.GetAnswer(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// UpdateAnswer godoc
// @Summary Change the rating of an answer
// @Description Only the user who gave the answer may change it: the UUID in the body must match.
// @Tags Admin - Answers
// @Accept json
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param answer body dto.AnswerRequest true "New rating and the owner's UUID"
// @Success 200 {object} dto.AnswerResponse
// @Success 204 "Answer not found"
// @Failure 403 {object} dto.ErrorResponse "UUID does not match the answer's owner"
// @Router /answer/{answerId} [put]
func (c *AnswerController) UpdateAnswer(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "answerId")
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	answer, err := c.answerService.UpdateAnswer(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// DeleteAnswer godoc
// @Summary Delete an answer
// @Tags Admin - Answers
// @Param answerId path int true "Answer ID"
// @Success 204
// @Router /answer/{answerId} [delete]
func (c *AnswerController) DeleteAnswer(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "answerId")
	if !ok {
		return
	}
	if err := c.answerService.DeleteAnswer(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetQuestionAnswers godoc
// @Summary List the answers of a question
// @Tags Admin - Answers
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {array} dto.AnswerResponse
// @Success 204 "Question not found"
// @Router /question/{questionId}/answer [get]
func (c *AnswerController) GetQuestionAnswers(ctx *gin.Context) {
	questionID, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	answers, err := c.answerService.GetAnswersOfQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// CreateAnswer godoc
// @Summary Answer a single question
// @Tags Admin - Answers
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param answer body dto.AnswerRequest true "Rating (1-5, clamped) and user UUID"
// @Success 201 {object} dto.AnswerResponse
// @Success 204 "Question not found"
// @Failure 400 {object} dto.ErrorResponse "Missing user UUID"
// @Router /question/{questionId}/answer [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	questionID, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	answer, err := c.answerService.CreateAnswer(ctx.Request.Context(), questionID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.Created(ctx, "answer", answer.ID, answer)
}

// DeleteQuestionAnswers godoc
// @Summary Delete every answer of a question
// @Tags Admin - Answers
// @Param questionId path int true "Question ID"
// @Success 204
// @Router /question/{questionId}/answer [delete]
func (c *AnswerController) DeleteQuestionAnswers(ctx *gin.Context) {
	questionID, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	if err := c.answerService.DeleteAnswersOfQuestion(ctx.Request.Context(), questionID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetSurveyAnswers godoc
// @Summary List a survey's answers grouped per question
// @Tags Admin - Results
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {array} []dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown survey"
// @Router /surveys/{surveyId}/answer [get]
func (c *AnswerController) GetSurveyAnswers(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	answers, err := c.responseService.AllAnswersForSurvey(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetFullResults godoc
// @Summary Full result summary of a survey
// @Description Every question of the survey with all of its answers. Empty when nobody answered.
// @Tags Admin - Results
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {object} dto.SurveyResult
// @Success 204 "No answers yet"
// @Failure 400 {object} dto.ErrorResponse "Unknown survey"
// @Router /surveys/{surveyId}/results/full [get]
func (c *AnswerController) GetFullResults(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	result, err := c.responseService.SurveyResultsFullSummary(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResultsByUser godoc
// @Summary Survey results grouped per user
// @Tags Admin - Results
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {array} dto.UserResult
// @Failure 400 {object} dto.ErrorResponse "Unknown survey"
// @Router /surveys/{surveyId}/results [get]
func (c *AnswerController) GetResultsByUser(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	results, err := c.responseService.SurveyResultsByUser(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetInsight godoc
// @Summary AI narrative of a survey's results
// @Tags Admin - Results
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {object} dto.SurveyInsight
// @Success 204 "No answers yet"
// @Failure 503 {object} dto.ErrorResponse "Insights not configured or generation failed"
// @Router /surveys/{surveyId}/results/insight [get]
func (c *AnswerController) GetInsight(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	insight, err := c.insightService.SurveyInsight(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, insight)
}
