package rest

import "net/http"

type accessGrantResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// SpotifyAuth handles GET /api/spotify-auth
// It exchanges the configured client credentials for an access token the
// frontend uses for its own Spotify calls.
func (h *Handler) SpotifyAuth(w http.ResponseWriter, r *http.Request) {
	grant, err := h.auth.ClientCredentialsToken(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, accessGrantResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		ExpiresIn:   grant.ExpiresIn,
	})
}

// Callback handles GET /callback
// Spotify's auth flow redirects here; the query parameters are forwarded
// to the root page for the frontend to pick up.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if raw := r.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
