package google

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/internal/rest"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

type authRedirectDTO struct {
	RedirectUrl string `json:"redirectUrl"`
}

// GoogleAuth runs the per-user OAuth consent flow that lets the availability
// search read a user's calendar. Only the read-only calendar scope is
// requested; tokens are kept per user in google_calendar_auth, and a row
// without a token means the user has not completed consent yet.
type GoogleAuth struct {
	db          *sql.DB
	userService user.Service
	oauthConfig *oauth2.Config
}

func NewGoogleAuth(db *sql.DB, userService user.Service, cfg config.Application) *GoogleAuth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.Host + "/api/integrations/google/auth/callback",
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}

	return &GoogleAuth{db: db, userService: userService, oauthConfig: oauthConfig}
}

// OAuthLogin starts a fresh consent flow for the current user and responds
// with the Google consent URL the client should open. Any previous token row
// is discarded first; the state carries the caller's finalUrl together with a
// nonce that ties the callback back to this user's row.
func (g *GoogleAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	currentUser, err := g.userService.GetCurrentUser(r.Context())
	if err != nil {
		log.Error("unable to retrieve current user: ", err)
		http.Error(w, "unable to retrieve current user", http.StatusInternalServerError)
		return
	}

	if _, err := g.db.Exec("DELETE FROM google_calendar_auth WHERE user_id = ?", currentUser.Id); err != nil {
		log.Errorf("failed to delete old calendar consent for user %d: %v", currentUser.Id, err)
		g.writeAuthError(w)
		return
	}

	nonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")

	if _, err := g.db.Exec("INSERT INTO google_calendar_auth (user_id, nonce) VALUES (?, ?)", currentUser.Id, nonce); err != nil {
		log.Errorf("failed to store consent nonce for user %d: %v", currentUser.Id, err)
		g.writeAuthError(w)
		return
	}

	consentUrl := g.oauthConfig.AuthCodeURL(finalUrl+"|"+nonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	log.Tracef("redirecting user %d to Google consent with nonce %s", currentUser.Id, nonce)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(authRedirectDTO{RedirectUrl: consentUrl}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// OAuthCallback is where Google sends the user after consent. The code is
// exchanged for a token which is stored against the nonce from the state, and
// the user is bounced back to the finalUrl with a success flag either way.
func (g *GoogleAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		http.Error(w, "invalid state parameter", http.StatusBadRequest)
		return
	}
	finalUrl, nonce := parts[0], parts[1]

	token, err := g.oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Errorf("unable to exchange code for token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	_, err = g.db.Exec("UPDATE google_calendar_auth SET access_token = ?, refresh_token = ?, expiry = ? WHERE nonce = ?",
		token.AccessToken, token.RefreshToken, token.Expiry.Unix(), nonce)
	if err != nil {
		log.Errorf("unable to store calendar token for nonce %s: %v", nonce, err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}
	log.Debug("stored calendar token for nonce: ", nonce)
	http.Redirect(w, r, finalUrl+"?success=true", http.StatusFound)
}

// OAuthLogout drops the stored token, cutting the availability search off
// from the user's calendar until they consent again.
func (g *GoogleAuth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userId, err := user.CurrentId(r.Context())
	if err != nil {
		log.Error("unable to retrieve current user: ", err)
		http.Error(w, "unable to retrieve current user", http.StatusInternalServerError)
		return
	}

	if _, err := g.db.Exec("DELETE FROM google_calendar_auth WHERE user_id = ?", userId); err != nil {
		log.Errorf("failed to delete calendar consent for user %d: %v", userId, err)
		g.writeAuthError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *GoogleAuth) writeAuthError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error: "Failed to handle Google calendar authentication",
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// storedToken loads the user's calendar token. A nil token with nil error
// means no completed consent exists for the user.
func (g *GoogleAuth) storedToken(ctx context.Context, userId int) (*oauth2.Token, error) {
	var accessToken, refreshToken sql.NullString
	var expiryTimestamp sql.NullInt64
	err := g.db.QueryRowContext(ctx, "SELECT access_token, refresh_token, expiry FROM google_calendar_auth WHERE user_id = ?", userId).
		Scan(&accessToken, &refreshToken, &expiryTimestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to retrieve calendar token: %v", err)
	}
	// a consent row exists but the callback never completed
	if !accessToken.Valid {
		return nil, nil
	}

	return &oauth2.Token{
		AccessToken:  accessToken.String,
		RefreshToken: refreshToken.String,
		Expiry:       time.Unix(expiryTimestamp.Int64, 0),
	}, nil
}

func (g *GoogleAuth) getClient(ctx context.Context, userId int) (*http.Client, error) {
	token, err := g.storedToken(ctx, userId)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	if token == nil {
		return nil, nil
	}
	return g.oauthConfig.Client(context.Background(), token), nil
}
