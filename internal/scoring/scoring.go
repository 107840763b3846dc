package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/surfscout/surfscout/internal/config"
	"github.com/surfscout/surfscout/internal/models"
)

// Scorer rates a conditions snapshot for a beach.
type Scorer interface {
	Score(ctx context.Context, beachName string, snap *models.Snapshot) (*models.Assessment, error)
}

// New creates a Scorer from the given scoring config.
func New(cfg *config.ScoringConfig, apiKey string) (Scorer, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("scoring not configured")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o"
		}
		return &openaiScorer{apiKey: apiKey, model: model, client: client}, nil
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeScorer{apiKey: apiKey, model: model, client: client}, nil
	default:
		return nil, fmt.Errorf("unknown scoring provider: %q (valid: openai, claude)", cfg.Provider)
	}
}

const systemPrompt = "You are a surf conditions expert focusing on Australian beaches."

const scorePrompt = `You are an expert surfer with deep knowledge of Australian surf conditions. Please analyze the following surf conditions for %s:

Tide: %.2f meters, state: %s
Wind: %.1f km/h, direction: %.0f° (%s)
Swell: %.2f meters, period: %.0f seconds, direction: %.0f° (%s)

Based on these conditions, give me a surf quality score from 0-10 (0 being terrible, 10 being perfect) and a one-paragraph explanation justifying the score. Consider how these conditions affect wave quality, ride-ability, and overall surf experience. Reply in JSON format with keys 'score' and 'explanation'.`

func buildPrompt(beachName string, snap *models.Snapshot) string {
	return fmt.Sprintf(scorePrompt,
		beachName,
		snap.Tide.Height, snap.Tide.State,
		snap.Wind.SpeedKPH, snap.Wind.DirectionDeg, models.CompassPoint(snap.Wind.DirectionDeg),
		snap.Swell.HeightM, snap.Swell.PeriodSec, snap.Swell.DirectionDeg, models.CompassPoint(snap.Swell.DirectionDeg),
	)
}

// parseAssessment maps a model reply onto an Assessment. Numeric scores
// outside [0,10] are clamped rather than rejected; only a reply with no
// usable number at all is a ParseError.
func parseAssessment(reply string) (*models.Assessment, error) {
	text := strings.TrimSpace(reply)

	// Some models wrap JSON in a fenced code block despite instructions
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var raw struct {
		Score       interface{} `json:"score"`
		Explanation string      `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &ParseError{Reply: reply, Err: err}
	}

	var score float64
	switch v := raw.Score.(type) {
	case float64:
		score = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, &ParseError{Reply: reply, Err: fmt.Errorf("score %q is not numeric", v)}
		}
		score = parsed
	default:
		return nil, &ParseError{Reply: reply, Err: fmt.Errorf("missing or non-numeric score")}
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	return &models.Assessment{
		Score:       score,
		Explanation: strings.TrimSpace(raw.Explanation),
	}, nil
}

// --- OpenAI provider ---

type openaiScorer struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string // overridable in tests
}

type openaiRequest struct {
	Model          string          `json:"model"`
	Messages       []openaiMessage `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiScorer) Score(ctx context.Context, beachName string, snap *models.Snapshot) (*models.Assessment, error) {
	body, _ := json.Marshal(openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(beachName, snap)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})

	endpoint := o.baseURL
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Str("model", o.model).Msg("openai response")

	if resp.StatusCode == http.StatusTooManyRequests {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &RateLimitedError{Message: string(b)}
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &ProviderError{Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(b))}
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, &ProviderError{Message: "decoding response", Err: err}
	}
	if len(or.Choices) == 0 {
		return nil, &ProviderError{Message: "empty response"}
	}

	return parseAssessment(or.Choices[0].Message.Content)
}

// --- Claude provider ---

type claudeScorer struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string // overridable in tests
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeScorer) Score(ctx context.Context, beachName string, snap *models.Snapshot) (*models.Assessment, error) {
	body, _ := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: 512,
		System:    systemPrompt,
		Messages:  []claudeMessage{{Role: "user", Content: buildPrompt(beachName, snap)}},
	})

	endpoint := c.baseURL
	if endpoint == "" {
		endpoint = "https://api.anthropic.com/v1/messages"
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Str("model", c.model).Msg("claude response")

	if resp.StatusCode == http.StatusTooManyRequests {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &RateLimitedError{Message: string(b)}
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &ProviderError{Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(b))}
	}

	var cr claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, &ProviderError{Message: "decoding response", Err: err}
	}
	if len(cr.Content) == 0 {
		return nil, &ProviderError{Message: "empty response"}
	}

	return parseAssessment(cr.Content[0].Text)
}
