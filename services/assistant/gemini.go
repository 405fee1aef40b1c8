package assistant

import (
	"context"
	"fmt"
	"strings"

	"parenthub/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ReplyGenerator produces one assistant reply from a system prompt and the
// role-tagged conversation so far.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []models.ChatTurn) (string, error)
}

// GeminiClient backs ReplyGenerator with a hosted Gemini model.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}, nil
}

func (g *GeminiClient) GenerateReply(ctx context.Context, systemPrompt string, history []models.ChatTurn) (string, error) {
	g.model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	// The final turn is the live question; everything before it is session
	// history for the model.
	if len(history) == 0 {
		return "", fmt.Errorf("empty conversation")
	}
	session := g.model.StartChat()
	for _, turn := range history[:len(history)-1] {
		role := "user"
		if turn.Role != "user" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
