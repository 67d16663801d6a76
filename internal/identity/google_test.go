package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"careernest/internal/identity"

	"github.com/stretchr/testify/assert"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token is verified and the email extracted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tok-123", r.URL.Query().Get("access_token"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"email":"a@x.com","email_verified":"true","aud":"client"}`))
		}))
		defer srv.Close()

		v := identity.NewGoogleVerifierWithEndpoint(srv.URL, srv.Client())
		result := v.Verify(ctx, "tok-123")

		assert.Equal(t, identity.OutcomeVerified, result.Outcome)
		assert.Equal(t, "a@x.com", result.Email)
	})

	t.Run("non-200 status is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_token"}`))
		}))
		defer srv.Close()

		v := identity.NewGoogleVerifierWithEndpoint(srv.URL, srv.Client())
		result := v.Verify(ctx, "expired")

		assert.Equal(t, identity.OutcomeRejected, result.Outcome)
		assert.Empty(t, result.Email)
	})

	t.Run("unreachable endpoint is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		v := identity.NewGoogleVerifierWithEndpoint(srv.URL, nil)
		result := v.Verify(ctx, "tok")

		assert.Equal(t, identity.OutcomeUnavailable, result.Outcome)
	})

	t.Run("unreadable payload is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		v := identity.NewGoogleVerifierWithEndpoint(srv.URL, srv.Client())
		result := v.Verify(ctx, "tok")

		assert.Equal(t, identity.OutcomeUnavailable, result.Outcome)
	})
}
