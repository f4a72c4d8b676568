package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

func TestSaveUser(t *testing.T) {
	id, err := storage.SaveUser(domain.User{Email: "save@example.com", PassHash: "hash"})
	require.NoError(t, err, "SaveUser should not return an error")
	assert.Greater(t, id, domain.UserId(0), "Expected ID > 0")

	_, err = storage.SaveUser(domain.User{Email: "save@example.com", PassHash: "hash"})
	require.Error(t, err, "Saving the same email twice should return an error")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 409, e.StatusCode, "Expected status code 409")
}

func TestUserByEmail(t *testing.T) {
	_, err := storage.SaveUser(domain.User{Email: "byemail@example.com", PassHash: "hash"})
	require.NoError(t, err, "SaveUser should not return an error")

	user, err := storage.UserByEmail("byemail@example.com")
	require.NoError(t, err, "User retrieval should not return an error")
	assert.Equal(t, domain.Email("byemail@example.com"), user.Email, "Unexpected user email")
	assert.Equal(t, "hash", user.PassHash, "Unexpected password hash")
	assert.False(t, user.CreatedAt.IsZero(), "Expected a server-assigned timestamp")

	_, err = storage.UserByEmail("nonexistent@example.com")
	require.Error(t, err, "Expected error for nonexistent user")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestUserById(t *testing.T) {
	id, err := storage.SaveUser(domain.User{Email: "byid@example.com", PassHash: "hash"})
	require.NoError(t, err, "SaveUser should not return an error")

	user, err := storage.User(id)
	require.NoError(t, err, "User retrieval should not return an error")
	assert.Equal(t, id, user.Id, "Unexpected user id")
	assert.Equal(t, domain.Email("byid@example.com"), user.Email, "Unexpected user email")

	_, err = storage.User(id + 100000)
	require.Error(t, err, "Expected error for nonexistent user")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}
