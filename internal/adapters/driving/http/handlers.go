package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"bad request"`
	Message string `json:"message,omitempty" example:"search term is required"`
}

// HealthResponse represents the liveness payload
// @Description Service liveness payload
type HealthResponse struct {
	Status      string `json:"status" example:"OK"`
	Message     string `json:"message" example:"SnapSeek API is running"`
	Timestamp   string `json:"timestamp" example:"2025-06-01T12:00:00Z"`
	Environment string `json:"environment" example:"production"`
}

// SearchRequest is the body of POST /api/search
// @Description Image search request
type SearchRequest struct {
	Term string `json:"term" example:"mountains"`
}

// Health and discovery endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the liveness status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "OK",
		Message:     "SnapSeek API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: s.environment,
	})
}

// handleRoot godoc
// @Summary      API welcome
// @Description  Returns a welcome document listing the endpoint groups
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the SnapSeek API",
		"endpoints": map[string]string{
			"auth":   "/auth/{google|facebook|github}",
			"search": "/api/search",
			"health": "/health",
		},
	})
}

// handleNotFound answers unmatched routes with the endpoint listing
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error": "route not found",
		"availableEndpoints": map[string][]string{
			"auth": {
				"GET /auth/{provider}",
				"GET /auth/{provider}/callback",
				"GET /auth/logout",
				"GET /auth/currentUser",
			},
			"api": {
				"POST /api/search",
				"GET /api/history",
				"GET /api/topSearches",
			},
		},
	})
}

// OAuth login flow

// handleLoginBegin godoc
// @Summary      Start OAuth login
// @Description  Redirects the browser to the provider's consent page
// @Tags         Authentication
// @Param        provider  path  string  true  "google, facebook or github"
// @Success      302  "Redirect to provider"
// @Failure      404  {object}  ErrorResponse  "Unknown or unconfigured provider"
// @Router       /auth/{provider} [get]
func (s *Server) handleLoginBegin(w http.ResponseWriter, r *http.Request) {
	provider := s.providers.Get(domain.Provider(r.PathValue("provider")))
	if provider == nil {
		s.handleNotFound(w, r)
		return
	}

	state, err := generateState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, provider.AuthURL(state), http.StatusFound)
}

// handleLoginCallback godoc
// @Summary      OAuth callback
// @Description  Completes the OAuth flow, resolves the user and sets the session cookie
// @Tags         Authentication
// @Param        provider  path   string  true   "google, facebook or github"
// @Param        code      query  string  false  "Authorization code"
// @Param        state     query  string  false  "CSRF state"
// @Success      302  "Redirect to client dashboard, or login page with error flag"
// @Router       /auth/{provider}/callback [get]
func (s *Server) handleLoginCallback(w http.ResponseWriter, r *http.Request) {
	provider := s.providers.Get(domain.Provider(r.PathValue("provider")))
	if provider == nil {
		s.handleNotFound(w, r)
		return
	}

	// One-shot state cookie
	s.clearCookie(w, stateCookieName)

	// Provider-side denial or error
	if r.URL.Query().Get("error") != "" {
		s.redirectLoginFailed(w, r)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		s.redirectLoginFailed(w, r)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		s.redirectLoginFailed(w, r)
		return
	}

	profile, err := provider.Exchange(r.Context(), code)
	if err != nil {
		s.redirectLoginFailed(w, r)
		return
	}

	user, err := s.identityService.Resolve(r.Context(), profile)
	if err != nil {
		s.redirectLoginFailed(w, r)
		return
	}

	session, token, err := s.authService.IssueSession(r.Context(), user)
	if err != nil {
		s.redirectLoginFailed(w, r)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.clientURL+"/dashboard", http.StatusFound)
}

// handleLogout godoc
// @Summary      Logout
// @Description  Invalidates the session and clears the session cookie
// @Tags         Authentication
// @Success      302  "Redirect to client root"
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/logout [get]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := extractSessionToken(r); token != "" {
		// Best effort: an already-deleted session is still a logout
		_ = s.authService.Logout(r.Context(), token)
	}

	s.clearCookie(w, sessionCookieName)
	http.Redirect(w, r, s.clientURL, http.StatusFound)
}

// handleCurrentUser godoc
// @Summary      Current user
// @Description  Returns the authenticated user's public profile
// @Tags         Authentication
// @Produce      json
// @Success      200  {object}  domain.UserSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/currentUser [get]
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())

	summary, err := s.authService.CurrentUser(r.Context(), authCtx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
			writeErrorMessage(w, http.StatusUnauthorized, "unauthorized", "no current user")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Search endpoints

// handleSearch godoc
// @Summary      Search images
// @Description  Searches the image provider and records the term in history
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest  true  "Search term"
// @Success      200      {object}  domain.SearchResult
// @Failure      400      {object}  ErrorResponse  "Missing or blank term"
// @Failure      401      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "bad request", "invalid request body")
		return
	}

	result, err := s.searchService.Search(r.Context(), GetAuthContext(r.Context()), req.Term)
	if err != nil {
		var provErr *domain.ProviderError
		switch {
		case errors.Is(err, domain.ErrTermRequired):
			writeErrorMessage(w, http.StatusBadRequest, "bad request", "search term is required")
		case errors.Is(err, domain.ErrUnauthorized):
			writeErrorMessage(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		case errors.As(err, &provErr):
			// Propagate the upstream status; never its body
			writeErrorMessage(w, provErr.StatusCode, "image provider error", "image search failed")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	s.metrics.RecordSearch()
	writeJSON(w, http.StatusOK, result)
}

// handleHistory godoc
// @Summary      Recent searches
// @Description  Returns the authenticated user's recent searches, newest first
// @Tags         Search
// @Produce      json
// @Success      200  {array}   domain.HistoryEntry
// @Failure      401  {object}  ErrorResponse
// @Router       /api/history [get]
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.historyService.Recent(r.Context(), GetAuthContext(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeErrorMessage(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleTopSearches godoc
// @Summary      Trending terms
// @Description  Returns the five most searched terms across all users
// @Tags         Search
// @Produce      json
// @Success      200  {array}   domain.TrendingTerm
// @Failure      401  {object}  ErrorResponse
// @Router       /api/topSearches [get]
func (s *Server) handleTopSearches(w http.ResponseWriter, r *http.Request) {
	terms, err := s.historyService.TopSearches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, terms)
}

// Helpers

func (s *Server) redirectLoginFailed(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.clientURL+"/login?error=authFailed", http.StatusFound)
}

func (s *Server) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

// generateState returns a random URL-safe CSRF state value
func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeErrorMessage(w http.ResponseWriter, status int, errLabel, message string) {
	writeJSON(w, status, ErrorResponse{Error: errLabel, Message: message})
}
