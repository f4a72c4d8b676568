package service

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
	"github.com/inkwell-dev/inkwell/internal/logger"
)

type AuthService interface {
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	tokens  TokenIssuer
}

type AuthStorage interface {
	UserByEmail(email domain.Email) (domain.User, error)
}

type TokenIssuer interface {
	NewToken(userId domain.UserId) (string, error)
}

func NewAuth(storage AuthStorage, tokens TokenIssuer) *Auth {
	return &Auth{storage: storage, tokens: tokens}
}

// Login checks the credentials against the stored bcrypt hash and issues
// an access token. Unknown email and wrong password produce the same
// response, so callers can't probe which field was wrong.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", invalidCredentials()
	}

	token, err := a.tokens.NewToken(user.Id)
	if err != nil {
		logger.Log.Error("failed to create access token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}

func invalidCredentials() error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Invalid credentials",
		StatusCode: http.StatusForbidden,
	}
}
