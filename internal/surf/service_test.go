package surf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfscout/surfscout/internal/models"
	"github.com/surfscout/surfscout/internal/scoring"
	"github.com/surfscout/surfscout/internal/willyweather"
)

type fakeWeather struct {
	locations []models.Location
	snapshot  *models.Snapshot
	searchErr error
	condsErr  error
}

func (f *fakeWeather) SearchBeaches(ctx context.Context, name string) ([]models.Location, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.locations, nil
}

func (f *fakeWeather) Conditions(ctx context.Context, locationID int) (*models.Snapshot, error) {
	if f.condsErr != nil {
		return nil, f.condsErr
	}
	return f.snapshot, nil
}

type fakeScorer struct {
	assessment *models.Assessment
	err        error
	calls      int
}

func (f *fakeScorer) Score(ctx context.Context, beachName string, snap *models.Snapshot) (*models.Assessment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

func risingTideSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Tide:       models.Tide{Height: 1.1, State: "rising"},
		Wind:       models.Wind{SpeedKPH: 10, DirectionDeg: 270},
		Swell:      models.Swell{HeightM: 1.2, PeriodSec: 9, DirectionDeg: 135},
		ObservedAt: time.Now(),
	}
}

func TestService_Evaluate(t *testing.T) {
	weather := &fakeWeather{snapshot: risingTideSnapshot()}
	scorer := &fakeScorer{assessment: &models.Assessment{
		Score:       7.5,
		Explanation: "Light offshore wind grooming a solid groundswell at mid tide.",
	}}

	svc := NewService(weather, scorer)

	eval, err := svc.Evaluate(context.Background(), 19493, "Bondi Beach")
	require.NoError(t, err)

	assert.Same(t, weather.snapshot, eval.Snapshot)
	assert.GreaterOrEqual(t, eval.Assessment.Score, 0.0)
	assert.LessOrEqual(t, eval.Assessment.Score, 10.0)
	assert.NotEmpty(t, eval.Assessment.Explanation)
	assert.Equal(t, 1, scorer.calls)
}

func TestService_Evaluate_WeatherFailureShortCircuits(t *testing.T) {
	weather := &fakeWeather{condsErr: willyweather.NewProviderError("status 500", nil)}
	scorer := &fakeScorer{assessment: &models.Assessment{Score: 5}}

	svc := NewService(weather, scorer)

	_, err := svc.Evaluate(context.Background(), 19493, "Bondi Beach")
	require.Error(t, err)

	// The scorer must never run when the weather fetch fails
	assert.Equal(t, 0, scorer.calls)

	var provider *willyweather.ProviderError
	assert.True(t, errors.As(err, &provider), "wrapped error should keep its type")
}

func TestService_Evaluate_RateLimitedShortCircuits(t *testing.T) {
	weather := &fakeWeather{condsErr: &willyweather.RateLimitedError{}}
	scorer := &fakeScorer{}

	svc := NewService(weather, scorer)

	_, err := svc.Evaluate(context.Background(), 19493, "Bondi Beach")
	require.Error(t, err)
	assert.Equal(t, 0, scorer.calls)
}

func TestService_Evaluate_ScoringFailure(t *testing.T) {
	weather := &fakeWeather{snapshot: risingTideSnapshot()}
	scorer := &fakeScorer{err: &scoring.ParseError{Reply: "not json"}}

	svc := NewService(weather, scorer)

	_, err := svc.Evaluate(context.Background(), 19493, "Bondi Beach")
	require.Error(t, err)

	var parseErr *scoring.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestService_SearchBeaches_NotFound(t *testing.T) {
	weather := &fakeWeather{searchErr: willyweather.NewNotFoundError("Nonexistent Beach")}
	svc := NewService(weather, &fakeScorer{})

	_, err := svc.SearchBeaches(context.Background(), "Nonexistent Beach")

	var notFound *willyweather.NotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  willyweather.NewNotFoundError("Atlantis Beach"),
			want: `No Australian beach found matching "Atlantis Beach". Try another name.`,
		},
		{
			name: "weather rate limited",
			err:  &willyweather.RateLimitedError{},
			want: "The weather service is busy right now. Wait a moment and try again.",
		},
		{
			name: "scoring rate limited",
			err:  &scoring.RateLimitedError{},
			want: "The scoring service has hit its usage limit. Wait a moment and try again.",
		},
		{
			name: "weather provider error",
			err:  willyweather.NewProviderError("status 502", nil),
			want: "Couldn't fetch surf conditions. Try again shortly.",
		},
		{
			name: "parse error",
			err:  &scoring.ParseError{Reply: "???"},
			want: "Couldn't read the surf quality assessment. Try again shortly.",
		},
		{
			name: "scoring provider error",
			err:  &scoring.ProviderError{Message: "status 503"},
			want: "Couldn't score the surf conditions. Try again shortly.",
		},
		{
			name: "unknown error",
			err:  errors.New("mystery"),
			want: "Something went wrong. Try again shortly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestUserMessage_WrappedErrors(t *testing.T) {
	weather := &fakeWeather{condsErr: willyweather.NewNotFoundError("Bondi Beach")}
	svc := NewService(weather, &fakeScorer{})

	_, err := svc.Evaluate(context.Background(), 1, "Bondi Beach")
	require.Error(t, err)

	// Wrapping through the pipeline must not lose the category
	assert.Contains(t, UserMessage(err), "No Australian beach found")
}
