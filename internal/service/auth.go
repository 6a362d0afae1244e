package service

import (
	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(payload map[string]any) (domain.RegisteredUser, error)
	Login(creds api.LoginRequest) (api.NewAuthentication, error)
	Refresh(refreshToken string) (api.RefreshedAuthentication, error)
	Logout(refreshToken string) error
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	AddUser(user domain.User) (domain.RegisteredUser, error)
	VerifyAvailableUsername(username string) error
	GetUserByUsername(username string) (domain.User, error)
	AddToken(token string) error
	VerifyTokenRegistered(token string) error
	DeleteToken(token string) error
}

type Jwt interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeRefreshToken(token string) (domain.User, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(payload map[string]any) (domain.RegisteredUser, error) {
	user, err := domain.MakeRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := a.storage.VerifyAvailableUsername(user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return a.storage.AddUser(domain.User{
		Username: user.Username,
		Password: string(hash),
		Fullname: user.Fullname,
	})
}

func (a *Auth) Login(creds api.LoginRequest) (api.NewAuthentication, error) {
	user, err := a.storage.GetUserByUsername(creds.Username)
	if err != nil {
		return api.NewAuthentication{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return api.NewAuthentication{}, errors.NewAuthentication("kredensial yang Anda masukkan salah")
	}

	accessToken, err := a.jwt.NewAccessToken(user)
	if err != nil {
		return api.NewAuthentication{}, err
	}
	refreshToken, err := a.jwt.NewRefreshToken(user)
	if err != nil {
		return api.NewAuthentication{}, err
	}

	if err := a.storage.AddToken(refreshToken); err != nil {
		return api.NewAuthentication{}, err
	}

	return api.NewAuthentication{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *Auth) Refresh(refreshToken string) (api.RefreshedAuthentication, error) {
	user, err := a.jwt.DecodeRefreshToken(refreshToken)
	if err != nil {
		return api.RefreshedAuthentication{}, errors.NewInvariant("refresh token tidak valid")
	}

	if err := a.storage.VerifyTokenRegistered(refreshToken); err != nil {
		return api.RefreshedAuthentication{}, err
	}

	accessToken, err := a.jwt.NewAccessToken(user)
	if err != nil {
		return api.RefreshedAuthentication{}, err
	}
	return api.RefreshedAuthentication{AccessToken: accessToken}, nil
}

func (a *Auth) Logout(refreshToken string) error {
	if err := a.storage.VerifyTokenRegistered(refreshToken); err != nil {
		return err
	}
	return a.storage.DeleteToken(refreshToken)
}
