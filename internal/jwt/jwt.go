package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type TokenService interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeAccessToken(tokenStr string) (domain.User, error)
	DecodeRefreshToken(tokenStr string) (domain.User, error)
}

type Jwt struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *Jwt {
	return &Jwt{accessKey, refreshKey, accessTTL, refreshTTL}
}

func (j *Jwt) NewAccessToken(user domain.User) (string, error) {
	return newToken(user, j.accessKey, j.accessTTL)
}

func (j *Jwt) NewRefreshToken(user domain.User) (string, error) {
	return newToken(user, j.refreshKey, j.refreshTTL)
}

func (j *Jwt) DecodeAccessToken(tokenStr string) (domain.User, error) {
	return decodeToken(tokenStr, j.accessKey)
}

func (j *Jwt) DecodeRefreshToken(tokenStr string) (domain.User, error) {
	return decodeToken(tokenStr, j.refreshKey)
}

func newToken(user domain.User, key string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func decodeToken(tokenStr, key string) (domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{
				Message:    fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, internal_errors.NewAuthentication("token tidak valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, internal_errors.NewAuthentication("token tidak valid")
	}

	id, ok := claims["id"].(string)
	if !ok {
		return domain.User{}, internal_errors.NewAuthentication("token tidak valid")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.User{}, internal_errors.NewAuthentication("token tidak valid")
	}

	return domain.User{Id: id, Username: username}, nil
}
