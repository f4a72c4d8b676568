package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/logger"
)

type UserService interface {
	Create(creds domain.Credentials) (domain.User, error)
	Get(id domain.UserId) (domain.User, error)
}

type Users struct {
	storage UserStorage
}

type UserStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(id domain.UserId) (domain.User, error)
}

func NewUsers(storage UserStorage) *Users {
	return &Users{storage: storage}
}

// Create registers a new user. Emails are stored lowercased so login is
// case-insensitive; uniqueness is enforced by the storage layer.
func (u *Users) Create(creds domain.Credentials) (domain.User, error) {
	email := strings.ToLower(creds.Email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user := domain.User{Email: email, PassHash: string(passHash)}
	id, err := u.storage.SaveUser(user)
	if err != nil {
		return domain.User{}, err
	}

	user.Id = id
	return user, nil
}

func (u *Users) Get(id domain.UserId) (domain.User, error) {
	return u.storage.User(id)
}
