package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfscout/surfscout/internal/config"
	"github.com/surfscout/surfscout/internal/models"
)

func bondiSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Tide:       models.Tide{Height: 1.1, State: "rising"},
		Wind:       models.Wind{SpeedKPH: 10, DirectionDeg: 270},
		Swell:      models.Swell{HeightM: 1.2, PeriodSec: 9, DirectionDeg: 135},
		ObservedAt: time.Now(),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ScoringConfig
		apiKey  string
		wantErr bool
	}{
		{"openai provider", &config.ScoringConfig{Provider: "openai"}, "key", false},
		{"claude provider", &config.ScoringConfig{Provider: "claude"}, "key", false},
		{"unknown provider", &config.ScoringConfig{Provider: "bard"}, "key", true},
		{"missing key", &config.ScoringConfig{Provider: "openai"}, "", true},
		{"nil config", nil, "key", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, tt.apiKey)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}

func TestParseAssessment(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		want     float64
		wantExpl string
		wantErr  bool
	}{
		{
			name:     "plain json",
			reply:    `{"score": 7.5, "explanation": "Clean offshore conditions."}`,
			want:     7.5,
			wantExpl: "Clean offshore conditions.",
		},
		{
			name:     "fenced code block",
			reply:    "```json\n{\"score\": 4, \"explanation\": \"Choppy.\"}\n```",
			want:     4,
			wantExpl: "Choppy.",
		},
		{
			name:     "score as string",
			reply:    `{"score": "8", "explanation": "Solid swell."}`,
			want:     8,
			wantExpl: "Solid swell.",
		},
		{
			name:     "clamps above range",
			reply:    `{"score": 11, "explanation": "Perfect."}`,
			want:     10,
			wantExpl: "Perfect.",
		},
		{
			name:     "clamps below range",
			reply:    `{"score": -2, "explanation": "Flat."}`,
			want:     0,
			wantExpl: "Flat.",
		},
		{
			name:    "not json",
			reply:   "the surf is pretty good today",
			wantErr: true,
		},
		{
			name:    "non-numeric score",
			reply:   `{"score": "great", "explanation": "..."}`,
			wantErr: true,
		},
		{
			name:    "missing score",
			reply:   `{"explanation": "no number here"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssessment(tt.reply)
			if tt.wantErr {
				var parseErr *ParseError
				require.Error(t, err)
				assert.True(t, errors.As(err, &parseErr), "want ParseError, got %T", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.wantExpl, got.Explanation)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 10.0)
		})
	}
}

func TestOpenAIScorer_Score(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openaiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Bondi Beach")
		assert.Contains(t, req.Messages[1].Content, "1.20 meters")
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"content": `{"score": 6.5, "explanation": "Fun mid-tide waves with light offshore wind."}`,
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	s := &openaiScorer{apiKey: "test-key", model: "gpt-4o", client: server.Client(), baseURL: server.URL}

	assessment, err := s.Score(context.Background(), "Bondi Beach", bondiSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 6.5, assessment.Score)
	assert.NotEmpty(t, assessment.Explanation)
}

func TestClaudeScorer_Score(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		resp := map[string]interface{}{
			"content": []map[string]string{
				{"text": `{"score": 3, "explanation": "Onshore slop, short period swell."}`},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	s := &claudeScorer{apiKey: "test-key", model: "claude-haiku-4-5-20251001", client: server.Client(), baseURL: server.URL}

	assessment, err := s.Score(context.Background(), "Bells Beach", bondiSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 3.0, assessment.Score)
	assert.NotEmpty(t, assessment.Explanation)
}

func TestOpenAIScorer_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exceeded"))
	}))
	defer server.Close()

	s := &openaiScorer{apiKey: "test-key", model: "gpt-4o", client: server.Client(), baseURL: server.URL}

	_, err := s.Score(context.Background(), "Bondi Beach", bondiSnapshot())

	var rateLimited *RateLimitedError
	require.Error(t, err)
	assert.True(t, errors.As(err, &rateLimited), "want RateLimitedError, got %T", err)
}

func TestOpenAIScorer_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := &openaiScorer{apiKey: "test-key", model: "gpt-4o", client: server.Client(), baseURL: server.URL}

	_, err := s.Score(context.Background(), "Bondi Beach", bondiSnapshot())

	var provider *ProviderError
	require.Error(t, err)
	assert.True(t, errors.As(err, &provider), "want ProviderError, got %T", err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Snapper Rocks", bondiSnapshot())

	assert.Contains(t, prompt, "Snapper Rocks")
	assert.Contains(t, prompt, "rising")
	assert.Contains(t, prompt, "10.0 km/h")
	assert.Contains(t, prompt, "9 seconds")
	assert.Contains(t, prompt, "'score' and 'explanation'")
}
