package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/rs/zerolog/log"
)

// UserSurveyController serves the respondent side: which surveys are left,
// taking a survey and the user's own answers.
type UserSurveyController struct {
	responseService service.ResponseService
}

func NewUserSurveyController(rs service.ResponseService) *UserSurveyController {
	return &UserSurveyController{responseService: rs}
}

func (c *UserSurveyController) RegisterRoutes(r gin.IRouter) {
	r.GET("/surveys/user/:userUuid", c.GetSortedSurveys)
	r.GET("/surveys/:surveyId/user/:userUuid", c.GetSurveyForUser)
	r.POST("/surveys/:surveyId/submit", c.SubmitSurvey)

	r.GET("/users/:userUuid/answers", c.GetUserAnswers)
	r.GET("/users/:userUuid/surveys/:surveyId/answered", c.HasAnsweredSurvey)
	r.GET("/users/:userUuid/questions/:questionId/answered", c.HasAnsweredQuestion)
}

// GetSortedSurveys godoc
// @Summary (User) Surveys split by whether the user answered them
// @Tags User - Surveys
// @Produce json
// @Param userUuid path string true "User UUID"
// @Success 200 {object} dto.SortedSurveys
// @Failure 400 {object} dto.ErrorResponse "Invalid UUID"
// @Router /surveys/user/{userUuid} [get]
func (c *UserSurveyController) GetSortedSurveys(ctx *gin.Context) {
	userUUID, ok := controller.UUIDParam(ctx, "userUuid")
	if !ok {
		return
	}
	sorted, err := c.responseService.SurveysSortedForUser(ctx.Request.Context(), userUUID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sorted)
}

// GetSurveyForUser godoc
// @Summary (User) Questions of a survey the user has not answered yet
// @Tags User - Surveys
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Param userUuid path string true "User UUID"
// @Success 200 {array} dto.QuestionResponse
// @Success 204 "Survey not found"
// @Failure 403 {object} dto.ErrorResponse "Survey already answered"
// @Router /surveys/{surveyId}/user/{userUuid} [get]
func (c *UserSurveyController) GetSurveyForUser(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	userUUID, ok := controller.UUIDParam(ctx, "userUuid")
	if !ok {
		return
	}
	if _, err := c.responseService.SurveyForUser(ctx.Request.Context(), surveyID, userUUID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	questions, err := c.responseService.QuestionsOfSurvey(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitSurvey godoc
// @Summary (User) Submit answers for a survey
// @Description Stores every answer of the submission or none of them. A user can submit a survey once.
// @Tags User - Surveys
// @Accept json
// @Param surveyId path int true "Survey ID"
// @Param submission body dto.UserSubmissionRequest true "User UUID and (questionId, rating) pairs"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse "Missing UUID, empty submission, unknown survey or question, question of another survey"
// @Failure 403 {object} dto.ErrorResponse "Survey already answered"
// @Router /surveys/{surveyId}/submit [post]
func (c *UserSurveyController) SubmitSurvey(ctx *gin.Context) {
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	var req dto.UserSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	log.Info().Uint("surveyID", surveyID).Int("answerCount", len(req.Submissions)).Msg("Received survey submission")

	if err := c.responseService.SubmitSurvey(ctx.Request.Context(), surveyID, req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}

// GetUserAnswers godoc
// @Summary (User) Every answer given by a user
// @Tags User - Answers
// @Produce json
// @Param userUuid path string true "User UUID"
// @Success 200 {array} dto.AnswerResponse
// @Router /users/{userUuid}/answers [get]
func (c *UserSurveyController) GetUserAnswers(ctx *gin.Context) {
	userUUID, ok := controller.UUIDParam(ctx, "userUuid")
	if !ok {
		return
	}
	answers, err := c.responseService.AnswersFromUser(ctx.Request.Context(), userUUID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// HasAnsweredSurvey godoc
// @Summary (User) Whether the user answered a survey
// @Tags User - Answers
// @Produce json
// @Param userUuid path string true "User UUID"
// @Param surveyId path int true "Survey ID"
// @Success 200 {object} dto.AnsweredResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown survey"
// @Router /users/{userUuid}/surveys/{surveyId}/answered [get]
func (c *UserSurveyController) HasAnsweredSurvey(ctx *gin.Context) {
	userUUID, ok := controller.UUIDParam(ctx, "userUuid")
	if !ok {
		return
	}
	surveyID, ok := controller.IDParam(ctx, "surveyId")
	if !ok {
		return
	}
	answered, err := c.responseService.HasAnsweredSurvey(ctx.Request.Context(), userUUID, surveyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AnsweredResponse{Answered: answered})
}

// HasAnsweredQuestion godoc
// @Summary (User) Whether the user answered a question
// @Tags User - Answers
// @Produce json
// @Param userUuid path string true "User UUID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.AnsweredResponse
// @Router /users/{userUuid}/questions/{questionId}/answered [get]
func (c *UserSurveyController) HasAnsweredQuestion(ctx *gin.Context) {
	userUUID, ok := controller.UUIDParam(ctx, "userUuid")
	if !ok {
		return
	}
	questionID, ok := controller.IDParam(ctx, "questionId")
	if !ok {
		return
	}
	answered, err := c.responseService.HasAnsweredQuestion(ctx.Request.Context(), userUUID, questionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AnsweredResponse{Answered: answered})
}
