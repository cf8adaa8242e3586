package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/service"
)

const (
	KeyJwtSessionCookieName = "jwt_session"
	KeyAuthorizationHeader  = "Authorization"
	bearerPrefix            = "Bearer "
)

var errNoToken = errors.New("no session token found")

// JWTMiddleware lets the request through only with a valid session token.
// The claims are stored in the request context.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r)
		if err != nil {
			log.Debugf("rejected request to %s, %v", r.URL.Path, err)
			http.Error(w, agora_errors.ErrUnAuthenticated.Error(), http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

// OptionalJWTMiddleware stores the claims when a valid token is present and
// serves the request anonymously otherwise.
func OptionalJWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r)
		if err != nil {
			if !errors.Is(err, errNoToken) {
				log.Debugf("ignoring invalid token on %s, %v", r.URL.Path, err)
			}
			next(w, r)
			return
		}
		next(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

func withClaims(ctx context.Context, claims service.UserCredentialClaims) context.Context {
	return context.WithValue(ctx, service.KeyCtxUserCredClaims, claims)
}

func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(KeyJwtSessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	header := r.Header.Get(KeyAuthorizationHeader)
	if strings.HasPrefix(header, bearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)); token != "" {
			return token, nil
		}
	}
	return "", errNoToken
}

func claimsFromRequest(r *http.Request) (service.UserCredentialClaims, error) {
	tokenString, err := tokenFromRequest(r)
	if err != nil {
		return service.UserCredentialClaims{}, err
	}

	secret := os.Getenv(service.KeyJWTSecret)
	if secret == "" {
		log.Error("jwt secret is not configured")
		return service.UserCredentialClaims{}, fmt.Errorf("%w, jwt secret missing", agora_errors.ErrInternal)
	}

	var claims service.UserCredentialClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return service.UserCredentialClaims{}, err
	}
	if !token.Valid {
		return service.UserCredentialClaims{}, errors.New("invalid token")
	}
	if claims.UserID == uuid.Nil {
		return service.UserCredentialClaims{}, errors.New("token has no user id")
	}
	return claims, nil
}
