package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"learnhub/models"
)

const defaultGeminiModel = "gemini-2.5-flash"

var geminiClient *genai.Client

// InitQuizFeedbackService initializes the Gemini client used for quiz
// explanations. An empty API key leaves the client nil and feedback
// disabled.
func InitQuizFeedbackService(apiKey string) error {
	if apiKey == "" {
		return nil
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return err
	}
	geminiClient = client
	return nil
}

// ExplainQuizAnswer generates a short explanation of why the chosen option
// is wrong and the correct one is right. Best-effort: callers treat an
// error as "no feedback available".
func ExplainQuizAnswer(ctx context.Context, question models.QuizQuestion, chosen int) (string, error) {
	if geminiClient == nil {
		return "", errors.New("quiz feedback not configured")
	}
	if chosen < 0 || chosen >= len(question.Options) || question.Answer < 0 || question.Answer >= len(question.Options) {
		return "", errors.New("answer index out of range")
	}

	prompt := fmt.Sprintf(
		"A learner answered a quiz question incorrectly.\nQuestion: %s\nTheir answer: %s\nCorrect answer: %s\nExplain in two sentences why the correct answer is right. Plain text only.",
		question.Prompt, question.Options[chosen], question.Options[question.Answer],
	)

	resp, err := geminiClient.Models.GenerateContent(ctx, defaultGeminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
