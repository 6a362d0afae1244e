package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddUser(user domain.User) (domain.RegisteredUser, error) {
	id := "user-" + s.newId()

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username, user.Password, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) VerifyAvailableUsername(username string) error {
	var found string
	err := s.db.QueryRow("SELECT username FROM users WHERE username = $1", username).Scan(&found)
	if err == nil {
		return internal_errors.NewInvariant("username tidak tersedia")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("failed to verify username: %w", err)
}

func (s *Storage) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewInvariant("username tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *Storage) AddToken(token string) error {
	if _, err := s.db.Exec("INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *Storage) VerifyTokenRegistered(token string) error {
	var found string
	err := s.db.QueryRow("SELECT token FROM authentications WHERE token = $1", token).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewInvariant("refresh token tidak ditemukan di database")
		}
		return fmt.Errorf("failed to verify refresh token: %w", err)
	}
	return nil
}

func (s *Storage) DeleteToken(token string) error {
	if _, err := s.db.Exec("DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
