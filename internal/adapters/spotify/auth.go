package spotify

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

const defaultTokenURL = "https://accounts.spotify.com/api/token"

// Authenticator exchanges the configured client credentials for an
// access token via Spotify's accounts service.
type Authenticator struct {
	conf *clientcredentials.Config
}

var _ ports.TokenProvider = (*Authenticator)(nil)

// NewAuthenticator constructs an Authenticator. tokenURL may be empty,
// in which case the production accounts endpoint is used.
func NewAuthenticator(clientID, clientSecret, tokenURL string) *Authenticator {
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	return &Authenticator{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
	}
}

// ClientCredentialsToken performs the client-credentials grant and
// returns the resulting access grant.
func (a *Authenticator) ClientCredentialsToken(ctx context.Context) (ports.AccessGrant, error) {
	tok, err := a.conf.Token(ctx)
	if err != nil {
		return ports.AccessGrant{}, fmt.Errorf("spotify adapter: token exchange failed: %w", err)
	}

	expiresIn := int64(0)
	if !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry).Seconds())
	}

	return ports.AccessGrant{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   expiresIn,
	}, nil
}
