package suggest

import (
	"context"
	"fmt"
	"strings"

	"moneybook/ledger/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSuggester asks the Gemini API to pick a category from the registry's
// list. It is only constructed when AI suggestions are enabled in the
// configuration; the keyword strategy remains the offline fallback.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
	source CategorySource
}

// NewGeminiSuggester creates a Gemini-backed suggester. The API key comes
// from configuration (GEMINI_API_KEY).
func NewGeminiSuggester(ctx context.Context, apiKey, modelName string, source CategorySource) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggester{
		client: client,
		model:  client.GenerativeModel(modelName),
		source: source,
	}, nil
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// Suggest asks the model to pick exactly one category for the note. Any
// answer outside the allowed list, and any API error, degrades to
// not-found so the caller can fall back to the keyword strategy.
func (s *GeminiSuggester) Suggest(ctx context.Context, kind models.Kind, note string) (string, bool, error) {
	if strings.TrimSpace(note) == "" {
		return "", false, nil
	}

	categories := s.source.Categories(kind)
	prompt := fmt.Sprintf(
		"You are categorizing a personal ledger entry. Pick exactly one category from this list: %s. "+
			"Answer with the category name only, nothing else.\nEntry note: %s",
		strings.Join(categories, ", "), note)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.WithError(err).Warn("Gemini suggestion failed")
		return "", false, err
	}

	answer := extractText(resp)
	answer = strings.TrimSpace(answer)
	for _, name := range categories {
		if answer == name {
			log.WithField("category", name).Debug("Gemini suggested category")
			return name, true, nil
		}
	}

	log.WithField("answer", answer).Debug("Gemini answer not in category list, ignoring")
	return "", false, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
