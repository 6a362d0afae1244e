package domain

import (
	"errors"
	"regexp"
)

// User is the stored account record. Password holds the bcrypt hash.
type User struct {
	Id       UserId
	Username string
	Password string
	Fullname string
}

type RegisteredUser struct {
	Id       UserId `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// RegisterUser is the validated registration payload. Password is still
// plaintext here; hashing happens in the auth service.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

var usernamePattern = regexp.MustCompile(`^\w+$`)

func MakeRegisterUser(payload map[string]any) (RegisterUser, error) {
	fields, err := requireStrings(payload, "REGISTER_USER", "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}

	username := fields["username"]
	if len(username) > 50 {
		return RegisterUser{}, errors.New("REGISTER_USER.USERNAME_LIMIT_CHAR")
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, errors.New("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	}

	return RegisterUser{
		Username: username,
		Password: fields["password"],
		Fullname: fields["fullname"],
	}, nil
}
