package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tender-app/backend/internal/types"
)

// ErrScannerUnavailable is returned when no vision collaborator is
// configured, typically because OPENAI_API_KEY was not set.
var ErrScannerUnavailable = errors.New("ingredient scanner is not configured")

// IngredientScanner identifies grocery items in a photo.
type IngredientScanner interface {
	ScanImage(ctx context.Context, imageBase64 string) ([]types.IngredientGuess, error)
}

const scanPrompt = `You are looking at a photo of the inside of a fridge or a pile of groceries.
List every distinct food item you can identify.
Return ONLY a JSON array, no markdown, where each element has:
- "name": the item name, singular, lower case
- "quantity": your best count, at least 1
- "category": one of "Produce", "Dairy", "Meat", "Pantry", "Frozen", "Beverages", "Other"`

type visionContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type visionMessage struct {
	Role    string          `json:"role"`
	Content []visionContent `json:"content"`
}

type visionRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIVision implements IngredientScanner against the OpenAI chat
// completions API using an image message.
type OpenAIVision struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIVision(apiKey string) *OpenAIVision {
	return &OpenAIVision{
		apiKey:     apiKey,
		baseURL:    "https://api.openai.com/v1/chat/completions",
		httpClient: &http.Client{},
	}
}

func (c *OpenAIVision) ScanImage(ctx context.Context, imageBase64 string) ([]types.IngredientGuess, error) {
	imageURL := imageBase64
	if !strings.HasPrefix(imageURL, "data:") {
		imageURL = "data:image/jpeg;base64," + imageURL
	}

	req := visionRequest{
		Model: "gpt-4o",
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []visionContent{
					{Type: "text", Text: scanPrompt},
					{Type: "image_url", ImageURL: &struct {
						URL string `json:"url"`
					}{URL: imageURL}},
				},
			},
		},
		MaxTokens: 1000,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return nil, fmt.Errorf("vision API returned status %d", response.StatusCode)
		}
		return nil, fmt.Errorf("vision API error: %s", errorResponse.Error.Message)
	}

	var result visionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	content := stripMarkdownFence(result.Choices[0].Message.Content)

	var guesses []types.IngredientGuess
	if err := json.Unmarshal([]byte(content), &guesses); err != nil {
		return nil, fmt.Errorf("failed to parse scan result: %v", err)
	}
	for i := range guesses {
		if guesses[i].Quantity <= 0 {
			guesses[i].Quantity = 1
		}
	}
	return guesses, nil
}

// stripMarkdownFence trims a ```json ... ``` wrapper the model sometimes
// emits despite the prompt.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
