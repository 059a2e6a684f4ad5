package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

// actorEcho writes the resolved actor as the body.
func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ActorFromContext(r.Context())))
	})
}

func serve(h http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, http.NoBody)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestActorMiddleware_NoSecret_Anonymous(t *testing.T) {
	h := ActorMiddleware(nil)(actorEcho())
	rr := serve(h, "/search/playlists", "Bearer whatever")
	if rr.Code != http.StatusOK || rr.Body.String() != "" {
		t.Errorf("got %d %q, want anonymous 200", rr.Code, rr.Body.String())
	}
}

func TestActorMiddleware_MissingHeader_Anonymous(t *testing.T) {
	h := ActorMiddleware(testSecret)(actorEcho())
	rr := serve(h, "/search/playlists", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "" {
		t.Errorf("got %d %q, want anonymous 200", rr.Code, rr.Body.String())
	}
}

func TestActorMiddleware_ValidToken(t *testing.T) {
	h := ActorMiddleware(testSecret)(actorEcho())
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rr := serve(h, "/search/playlists", "Bearer "+tok)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "user-42" {
		t.Errorf("actor = %q, want user-42", rr.Body.String())
	}
}

func TestActorMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name string
		auth string
	}{
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other"), jwt.MapClaims{"sub": "u1"})},
		{"expired", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{"no subject", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"name": "x"})},
	}
	h := ActorMiddleware(testSecret)(actorEcho())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, "/search/users", tt.auth)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("got %d, want 401", rr.Code)
			}
			var errResp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Code != ErrorCodeUnauthorized {
				t.Errorf("code = %q", errResp.Code)
			}
		})
	}
}

func TestActorMiddleware_ExemptPaths(t *testing.T) {
	h := ActorMiddleware(testSecret)(actorEcho())
	for _, path := range []string{"/health", "/metrics"} {
		if rr := serve(h, path, "Bearer bad"); rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, rr.Code)
		}
	}
}
