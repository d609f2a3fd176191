package services

import (
	"errors"

	"github.com/MeenakshiPramod/WellHer/config"
	"github.com/MeenakshiPramod/WellHer/models"
	"github.com/MeenakshiPramod/WellHer/utils"

	"gorm.io/gorm"
)

// CredentialStore persists username/password-hash pairs and verifies logins.
type CredentialStore interface {
	Register(username, password string) error
	Verify(username, password string) bool
}

type gormCredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) CredentialStore {
	return &gormCredentialStore{db: db}
}

func (s *gormCredentialStore) Register(username, password string) error {
	// The route handler checks this too, but the contract holds here as well.
	if len(password) < 6 {
		return ErrWeakPassword
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return &StorageError{Op: "register lookup", Err: err}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := s.db.Create(&user).Error; err != nil {
		return &StorageError{Op: "register insert", Err: err}
	}
	return nil
}

func (s *gormCredentialStore) Verify(username, password string) bool {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return false
	}
	return utils.CheckPasswordHash(password, user.PasswordHash)
}

// AuthenticateUser verifies credentials against the default store and mints
// a session token.
func AuthenticateUser(username, password string) (string, error) {
	store := NewCredentialStore(config.DB)
	if !store.Verify(username, password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(username)
}

func RegisterUser(username, password string) error {
	return NewCredentialStore(config.DB).Register(username, password)
}
