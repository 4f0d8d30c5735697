package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mahmoudsultan/trivia-api/utils"
)

// TokenTTL is how long tokens from CreateToken stay valid
const TokenTTL = 24 * time.Hour

func CreateToken(secret, subject string) (string, error) {
	if secret == "" {
		return "", errors.New("auth: JWT secret key not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		})

	return token.SignedString([]byte(secret))
}

func VerifyToken(secret, tokenString string) (*jwt.RegisteredClaims, error) {
	if secret == "" {
		return nil, errors.New("auth: JWT secret key not set")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// RequireToken returns a guard that only lets through requests carrying
// "Authorization: Bearer <token>" signed with secret.
func RequireToken(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				log.Printf("RequireToken: missing bearer token for %s %s", r.Method, r.URL.Path)
				utils.WriteError(w, http.StatusUnauthorized)
				return
			}

			claims, err := VerifyToken(secret, tokenString)
			if err != nil {
				log.Printf("RequireToken: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				utils.WriteError(w, http.StatusUnauthorized)
				return
			}

			log.Printf("RequireToken: %s %s by %s", r.Method, r.URL.Path, claims.Subject)
			next.ServeHTTP(w, r)
		}
	}
}
