package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
)

// ErrMissingAccessToken indicates the caller supplied no music-provider
// credential. The orchestrator rejects such requests before any
// outbound call is made.
var ErrMissingAccessToken = errors.New("missing access token")

// ErrUpstreamAuth indicates the music provider rejected the supplied
// credential.
var ErrUpstreamAuth = errors.New("music provider rejected credentials")

// AuthError carries the provider status for a rejected credential so
// callers can distinguish "token expired" from "provider unreachable".
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("music provider rejected credentials: status %d", e.Status)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrUpstreamAuth
}

// RecommendationQuery is the provider-agnostic request for a track list.
type RecommendationQuery struct {
	AccessToken string
	Valence     float64
	Energy      float64
	SeedGenres  []string
}

// MusicProvider returns recommended tracks for a query, preserving the
// provider's ordering.
type MusicProvider interface {
	GetRecommendations(ctx context.Context, query RecommendationQuery) ([]domain.Track, error)
}

// AccessGrant is a credential issued by the music provider's token
// endpoint, handed through to the frontend for its own API calls.
type AccessGrant struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// TokenProvider exchanges the configured client credentials for an
// access grant.
type TokenProvider interface {
	ClientCredentialsToken(ctx context.Context) (AccessGrant, error)
}
