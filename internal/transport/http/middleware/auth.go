package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid token"}}`, http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			ident, err := IdentityFromToken(tokenStr, jwtSecret)
			if err != nil {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the acting identity from request context.
func GetIdentity(ctx context.Context) *domain.Identity {
	return ctx.Value(IdentityKey).(*domain.Identity)
}

// IdentityFromToken rebuilds the acting identity from token claims. The
// server holds no session state, so the token is the session.
func IdentityFromToken(tokenStr, secret string) (*domain.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role != string(domain.RoleUser) && role != string(domain.RoleAdmin) {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &domain.Identity{
		ID:    sub,
		Name:  name,
		Email: email,
		Role:  domain.Role(role),
	}, nil
}
