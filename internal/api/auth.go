package api

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshAuthenticationRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type DeleteAuthenticationRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response DTOs

type NewAuthentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshedAuthentication struct {
	AccessToken string `json:"accessToken"`
}
