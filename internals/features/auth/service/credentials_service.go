// internals/features/auth/service/credentials_service.go
package service

import (
	"crypto/subtle"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	helperAuth "dancestudio_backend/internals/helpers/auth"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrBadCredentials     = errors.New("invalid credentials")
)

// Credentials: satu pasangan admin dari konfigurasi (bukan tabel user).
// PasswordHash (bcrypt) dipakai bila diisi, Password diabaikan.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func (cr Credentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cr.Username)) == 1

	var passOK bool
	if cr.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cr.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(cr.Password)) == 1
	}
	return userOK && passOK
}

type AuthService struct {
	Creds  Credentials
	Tokens *helperAuth.AdminTokens
}

func NewAuthService(creds Credentials, tokens *helperAuth.AdminTokens) *AuthService {
	return &AuthService{Creds: creds, Tokens: tokens}
}

// Login returns a fresh admin token for the configured pair.
func (s *AuthService) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingCredentials
	}
	if !s.Creds.Check(username, password) {
		log.Printf("[WARN] login gagal untuk username=%q", username)
		return "", ErrBadCredentials
	}
	return s.Tokens.Issue()
}

// Verify proxies the token check so handlers don't touch the signer.
func (s *AuthService) Verify(raw string) (*helperAuth.AdminClaims, error) {
	return s.Tokens.Verify(raw)
}
