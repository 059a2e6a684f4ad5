package chi

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type actorKey struct{}

// ContextWithActor stores the caller id in the context.
func ContextWithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller id, or "" for anonymous callers.
func ActorFromContext(ctx context.Context) string {
	if a, ok := ctx.Value(actorKey{}).(string); ok {
		return a
	}
	return ""
}

// ActorMiddleware resolves the optional caller identity from an HS256 bearer
// token, taking the actor from the "sub" claim. Requests without an
// Authorization header stay anonymous; malformed or invalid tokens get 401.
// If secret is empty, every caller is anonymous (pass-through).
func ActorMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(secret) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized,
					"authorization header must use Bearer scheme")
				return
			}

			actor, err := parseActor(auth[len(bearerPrefix):], secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
		})
	}
}

func parseActor(tok string, secret []byte) (string, error) {
	parsed, err := jwt.Parse(tok,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}
