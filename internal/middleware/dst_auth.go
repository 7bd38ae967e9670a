package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenIssuer   = "core"
	tokenAudience = "portfolio"
	iatLeeway     = 30 * time.Second
)

// WithDSTAuth guards the routes it wraps with a short-lived RS256 bearer token
// issued by core for the portfolio audience. An empty key disables the check.
func WithDSTAuth(jwtPublicKeyPEM string) func(http.Handler) http.Handler {
	if jwtPublicKeyPEM == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(jwtPublicKeyPEM))
	if err != nil {
		panic(fmt.Sprintf("invalid Core RSA public key: %v", err))
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}),
	)
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodRS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return pubKey, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			claims := jwt.MapClaims{}
			tok, err := parser.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, keyFunc)
			if err != nil || !tok.Valid {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", err)
				return
			}
			sub, err := verifyClaims(claims, time.Now())
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}

			ctx := api_context.WithAuth(r.Context(), sub, toStringSlice(claims["roles"]))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifyClaims checks the registered claims and returns the subject.
func verifyClaims(claims jwt.MapClaims, now time.Time) (string, error) {
	if !claims.VerifyIssuer(tokenIssuer, true) {
		return "", errors.New("bad issuer")
	}
	if !claims.VerifyAudience(tokenAudience, true) {
		return "", errors.New("bad audience")
	}
	if !claims.VerifyExpiresAt(now.Unix(), true) {
		return "", errors.New("token expired")
	}
	if iat, ok := asInt64(claims["iat"]); ok && time.Unix(iat, 0).After(now.Add(iatLeeway)) {
		return "", errors.New("invalid iat")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing sub")
	}
	return sub, nil
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case json.Number:
		i, err := x.Int64()
		if err == nil {
			return i, true
		}
	}
	return 0, false
}

func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
