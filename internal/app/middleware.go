package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve the caller's identity and put the user into the request context
	// for downstream services. With Firebase enabled the Authorization header
	// must carry a valid ID token; otherwise the X-User-Id header is trusted
	// as-is (local development only).
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			uid := ""
			if deps.AuthTokenVerifier != nil {
				authHeader := req.Header.Get("Authorization")
				if authHeader != "" {
					idToken := strings.TrimPrefix(authHeader, "Bearer ")
					verifiedUid, err := deps.AuthTokenVerifier.Verify(ctx, idToken)
					if err != nil {
						log.Debugf("ID token verification failed: %v", err)
						http.Error(w, "invalid ID token", http.StatusUnauthorized)
						return
					}
					uid = verifiedUid
				}
			} else {
				uid = req.Header.Get("X-User-Id")
			}

			if uid != "" {
				u, err := deps.UserService.GetUserByUid(ctx, uid)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						// A verified identity without an account is only allowed
						// to register itself.
						if req.Method == http.MethodPost && req.URL.Path == "/api/user" {
							next.ServeHTTP(w, req.WithContext(ctx))
							return
						}
						log.Debugf("user not found: %s", uid)
						http.Error(w, "user not found", http.StatusForbidden)
						return
					}
					log.Errorf("failed to get user: %v", err)
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				ctx = user.WithUser(ctx, u)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
