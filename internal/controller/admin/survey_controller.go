package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/service"
)

// SurveyController manages surveys and their questions.
type SurveyController struct {
	surveyService   service.SurveyService
	questionService service.QuestionService
	responseService service.ResponseService
}

func NewSurveyController(ss service.SurveyService, qs service.QuestionService, rs service.ResponseService) *SurveyController {
	return &SurveyController{surveyService: ss, questionService: qs, responseService: rs}
}

func (c *SurveyController) RegisterRoutes(r gin.IRouter) {
	r.GET("/surveys", c.GetAllSurveys)
	r.GET("/surveys/json", c.GetAllSurveysJSON)
	r.POST("/surveys", c.CreateSurvey)
	r.GET("/surveys/:surveyId", c.GetSurvey)
	r.PUT("/surveys/:surveyId", c.UpdateSurvey)
	r.DELETE("/surveys/:surveyId", c.DeleteSurvey)

	r.POST("/surveys/:surveyId/question", c.CreateQuestion)
	r.GET("/surveys/:surveyId/question", c.GetSurveyQuestions)
	r.DELETE("/surveys/:surveyId/question", c.DeleteSurveyQuestions)

	r.GET("/question", c.GetAllQuestions)
	r.GET("/question/json", c.GetAllQuestionsJSON)
	r.GET("/question/:questionId", c.GetQuestion)
	r.PUT("/question/:questionId", c.UpdateQuestion)
	r.DELETE("/question/:questionId", c.DeleteQuestion)
}

// GetAllSurveys godoc
// @Summary List surveys
// @Tags Admin - Surveys
// @Produce json
// @Success 200 {array} dto.SurveyResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [get]
func (c *SurveyController) GetAllSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.GetAllSurveys(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetAllSurveysJSON godoc
// @Summary List surveys wrapped with their id
// @Tags Admin - Surveys
// @Produce json
// @Success 200 {array} dto.ResponseModel[dto.SurveyResponse]
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/json [get]
func (c *SurveyController) GetAllSurveysJSON(ctx *gin.Context) {
	surveys, err := c.surveyService.GetAllSurveysJSON(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Creates a survey from a title and a description. Its id and UUID are generated.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyRequest true "Survey title and description"
// @Success 201 {object} dto.SurveyResponse
// @Header 201 {string} Location "URL of the new survey"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	survey, err := c.surveyService.CreateSurvey(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.Created(ctx, "surveys", survey.ID, survey)
}

// GetSurvey godoc
// @Summary Get a survey
// @Tags Admin - Surveys
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponse
// @Success 204 "Survey not found"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /surveys/{surveyId} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	survey, err := c.surveyService.GetSurvey(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// UpdateSurvey godoc
// @Summary Update a survey's title and description
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Param survey body dto.SurveyRequest true "New title and description"
// @Success 200 {object} dto.SurveyResponse
// @Success 204 "Survey not found"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Router /surveys/{surveyId} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	var req dto.SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	survey, err := c.surveyService.UpdateSurvey(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// DeleteSurvey godoc
// @Summary Delete a survey
// @Description Deletes the survey with all of its questions and answers.
// @Tags Admin - Surveys
// @Param surveyId path int true "Survey ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{surveyId} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	if err := c.surveyService.DeleteSurvey(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateQuestion godoc
// @Summary Add a question to a survey
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Param question body dto.QuestionRequest true "Question text"
// @Success 201 {object} dto.QuestionResponse
// @Success 204 "Survey not found"
// @Failure 400 {object} dto.ErrorResponse "Missing text"
// @Router /surveys/{surveyId}/question [post]
func (c *SurveyController) CreateQuestion(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), surveyID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.Created(ctx, "question", question.ID, question)
}

// GetSurveyQuestions godoc
// @Summary List the questions of a survey
// @Tags Admin - Questions
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown survey"
// @Router /surveys/{surveyId}/question [get]
func (c *SurveyController) GetSurveyQuestions(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	questions, err := c.responseService.QuestionsOfSurvey(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DeleteSurveyQuestions godoc
// @Summary Delete every question of a survey
// @Tags Admin - Questions
// @Param surveyId path int true "Survey ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /surveys/{surveyId}/question [delete]
func (c *SurveyController) DeleteSurveyQuestions(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestionsOfSurvey(ctx.Request.Context(), surveyID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllQuestions godoc
// @Summary List all questions
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /question [get]
func (c *SurveyController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetAllQuestionsJSON godoc
// @Summary List all questions wrapped with their id
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.ResponseModel[dto.QuestionResponse]
// @Router /question/json [get]
func (c *SurveyController) GetAllQuestionsJSON(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestionsJSON(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Admin - Questions
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Success 204 "Question not found"
// @Router /question/{questionId} [get]
func (c *SurveyController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Update a question's text
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param question body dto.QuestionRequest true "New text"
// @Success 200 {object} dto.QuestionResponse
// @Success 204 "Question not found"
// @Failure 400 {object} dto.ErrorResponse "Missing text"
// @Router /question/{questionId} [put]
func (c *SurveyController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its answers
// @Tags Admin - Questions
// @Param questionId path int true "Question ID"
// @Success 204
// @Router /question/{questionId} [delete]
func (c *SurveyController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
