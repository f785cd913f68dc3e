package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// InsightService asks Gemini for a short narrative of a survey's results.
type InsightService interface {
	SurveyInsight(ctx context.Context, surveyID uint) (*dto.SurveyInsight, error)
}

// contentGenerator is the part of *genai.GenerativeModel the service uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiInsightService struct {
	generator contentGenerator
	modelName string
	results   ResponseService
}

func NewInsightService(cfg *config.Config, results ResponseService) (InsightService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Survey insights are disabled.")
		return &geminiInsightService{results: results, modelName: cfg.Gemini.Model}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel(cfg.Gemini.Model)
	gm.SetTemperature(0.3)
	return &geminiInsightService{generator: gm, modelName: cfg.Gemini.Model, results: results}, nil
}

func (s *geminiInsightService) SurveyInsight(ctx context.Context, surveyID uint) (*dto.SurveyInsight, error) {
	if s.generator == nil {
		return nil, apperr.Unavailable("insight_unavailable", "survey insights are not configured")
	}
	result, err := s.results.SurveyResultsFullSummary(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	resp, err := s.generator.GenerateContent(ctx, genai.Text(buildInsightPrompt(result)))
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Gemini API error during survey insight")
		return nil, apperr.Unavailable("insight_failed", "insight generation failed")
	}
	text := responseText(resp)
	if text == "" {
		log.Warn().Uint("surveyID", surveyID).Msg("Gemini returned no text content")
		return nil, apperr.Unavailable("insight_failed", "insight generation returned no content")
	}
	return &dto.SurveyInsight{SurveyID: surveyID, Model: s.modelName, Summary: text}, nil
}

type questionStats struct {
	text      string
	responses int
	skipped   int
	average   float64
	histogram [model.MaxRating + 1]int
}

func summarize(q dto.QuestionResult) questionStats {
	st := questionStats{text: q.Text, responses: len(q.Answers)}
	sum, rated := 0, 0
	for _, a := range q.Answers {
		if a.Rating == nil {
			st.skipped++
			continue
		}
		if *a.Rating < model.MinRating || *a.Rating > model.MaxRating {
			continue
		}
		st.histogram[*a.Rating]++
		sum += *a.Rating
		rated++
	}
	if rated > 0 {
		st.average = float64(sum) / float64(rated)
	}
	return st
}

func buildInsightPrompt(result *dto.SurveyResult) string {
	var b strings.Builder
	b.WriteString("You are an analyst summarizing the results of a satisfaction survey.\n")
	b.WriteString("Ratings go from 1 (worst) to 5 (best). Skipped means the respondent gave no rating.\n\n")
	fmt.Fprintf(&b, "Survey: %s\n", result.Title)
	if result.Desc != "" {
		fmt.Fprintf(&b, "Description: %s\n", result.Desc)
	}
	b.WriteString("\nResults per question:\n")
	for i, q := range result.Questions {
		st := summarize(q)
		fmt.Fprintf(&b, "%d. %s\n   responses: %d, skipped: %d, average: %.2f, distribution:",
			i+1, st.text, st.responses, st.skipped, st.average)
		for r := model.MinRating; r <= model.MaxRating; r++ {
			fmt.Fprintf(&b, " %d=%d", r, st.histogram[r])
		}
		b.WriteString("\n")
	}
	b.WriteString("\nWrite a short summary (at most two paragraphs) of what respondents liked, ")
	b.WriteString("where they were unhappy, and one concrete suggestion. Do not invent numbers.\n")
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
