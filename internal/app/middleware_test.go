package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	uid string
	err error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.uid, nil
}

func TestIdentityMiddleware(t *testing.T) {
	registeredUser := user.User{Uid: "firebase-uid-1", Email: "alex@cheemco.app"}

	newUserService := func(t *testing.T) user.Service {
		service := user.NewUserService(user.NewStubUserRepo())
		_, err := service.CreateUser(context.Background(), registeredUser)
		require.NoError(t, err)
		return service
	}

	t.Run("verified token resolves the user into the context", func(t *testing.T) {
		deps := &Dependencies{
			AuthTokenVerifier: &stubVerifier{uid: "firebase-uid-1"},
			UserService:       newUserService(t),
		}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		var seen user.User
		router.HandleFunc("/api/hangout", func(w http.ResponseWriter, r *http.Request) {
			seen, _ = user.CurrentUser(r.Context())
			w.WriteHeader(http.StatusOK)
		}).Methods("GET")

		request := httptest.NewRequest(http.MethodGet, "/api/hangout", nil)
		request.Header.Set("Authorization", "Bearer some-token")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "alex@cheemco.app", seen.Email)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		deps := &Dependencies{
			AuthTokenVerifier: &stubVerifier{err: errors.New("token expired")},
			UserService:       newUserService(t),
		}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		router.HandleFunc("/api/hangout", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).Methods("GET")

		request := httptest.NewRequest(http.MethodGet, "/api/hangout", nil)
		request.Header.Set("Authorization", "Bearer bad-token")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("verified identity without an account is forbidden", func(t *testing.T) {
		deps := &Dependencies{
			AuthTokenVerifier: &stubVerifier{uid: "unknown-uid"},
			UserService:       newUserService(t),
		}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		router.HandleFunc("/api/hangout", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).Methods("GET")

		request := httptest.NewRequest(http.MethodGet, "/api/hangout", nil)
		request.Header.Set("Authorization", "Bearer some-token")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("verified identity without an account may register itself", func(t *testing.T) {
		deps := &Dependencies{
			AuthTokenVerifier: &stubVerifier{uid: "unknown-uid"},
			UserService:       newUserService(t),
		}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		router.HandleFunc("/api/user", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}).Methods("POST")

		request := httptest.NewRequest(http.MethodPost, "/api/user", nil)
		request.Header.Set("Authorization", "Bearer some-token")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusCreated, response.Code)
	})

	t.Run("without firebase the X-User-Id header is trusted", func(t *testing.T) {
		deps := &Dependencies{UserService: newUserService(t)}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		var seen user.User
		router.HandleFunc("/api/hangout", func(w http.ResponseWriter, r *http.Request) {
			seen, _ = user.CurrentUser(r.Context())
			w.WriteHeader(http.StatusOK)
		}).Methods("GET")

		request := httptest.NewRequest(http.MethodGet, "/api/hangout", nil)
		request.Header.Set("X-User-Id", "firebase-uid-1")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "alex@cheemco.app", seen.Email)
	})

	t.Run("anonymous request passes through without a user", func(t *testing.T) {
		deps := &Dependencies{UserService: newUserService(t)}
		router := mux.NewRouter()
		SetupMiddleware(router, deps, config.Application{})
		var userErr error
		router.HandleFunc("/api/hangout", func(w http.ResponseWriter, r *http.Request) {
			_, userErr = user.CurrentUser(r.Context())
			w.WriteHeader(http.StatusOK)
		}).Methods("GET")

		request := httptest.NewRequest(http.MethodGet, "/api/hangout", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.ErrorIs(t, userErr, user.ErrNoUser)
	})
}
