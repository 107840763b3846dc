package surf

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/surfscout/surfscout/internal/models"
	"github.com/surfscout/surfscout/internal/scoring"
	"github.com/surfscout/surfscout/internal/willyweather"
)

// Evaluation pairs a conditions snapshot with the model's assessment of it
type Evaluation struct {
	Snapshot   *models.Snapshot
	Assessment *models.Assessment
}

// Service sequences the weather lookup and the scoring call. It is a
// linear pipeline: conditions first, then the score, short-circuiting on
// the first failure.
type Service struct {
	weather willyweather.Service
	scorer  scoring.Scorer
}

// NewService creates a new surf evaluation service
func NewService(weather willyweather.Service, scorer scoring.Scorer) *Service {
	return &Service{
		weather: weather,
		scorer:  scorer,
	}
}

// SearchBeaches resolves a beach name to candidate locations
func (s *Service) SearchBeaches(ctx context.Context, name string) ([]models.Location, error) {
	return s.weather.SearchBeaches(ctx, name)
}

// Evaluate fetches conditions for a location and scores them. The scorer
// is never invoked when the weather fetch fails.
func (s *Service) Evaluate(ctx context.Context, locationID int, beachName string) (*Evaluation, error) {
	snapshot, err := s.weather.Conditions(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("fetching conditions: %w", err)
	}

	assessment, err := s.scorer.Score(ctx, beachName, snapshot)
	if err != nil {
		return nil, fmt.Errorf("scoring conditions: %w", err)
	}

	log.Info().Str("beach", beachName).Float64("score", assessment.Score).Msg("beach evaluated")

	return &Evaluation{
		Snapshot:   snapshot,
		Assessment: assessment,
	}, nil
}

// UserMessage maps an error from the pipeline to a single plain-text
// message for the user. Every category collapses to one message; there is
// no differentiated recovery.
func UserMessage(err error) string {
	var (
		notFound        *willyweather.NotFoundError
		weatherLimited  *willyweather.RateLimitedError
		weatherProvider *willyweather.ProviderError
		scoringLimited  *scoring.RateLimitedError
		scoringProvider *scoring.ProviderError
		parseErr        *scoring.ParseError
	)

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("No Australian beach found matching %q. Try another name.", notFound.Query)
	case errors.As(err, &weatherLimited):
		return "The weather service is busy right now. Wait a moment and try again."
	case errors.As(err, &scoringLimited):
		return "The scoring service has hit its usage limit. Wait a moment and try again."
	case errors.As(err, &weatherProvider):
		return "Couldn't fetch surf conditions. Try again shortly."
	case errors.As(err, &parseErr):
		return "Couldn't read the surf quality assessment. Try again shortly."
	case errors.As(err, &scoringProvider):
		return "Couldn't score the surf conditions. Try again shortly."
	default:
		return "Something went wrong. Try again shortly."
	}
}
