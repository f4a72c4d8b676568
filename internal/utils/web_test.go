package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

type testBody struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func reader(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestDecodeValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{"email": "a@b.com", "name": "x"}`), &body)
		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", body.Email)
	})

	t.Run("invalid json", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{not json`), &body)
		assert.Error(t, err)
		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	})

	t.Run("missing required field", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{"email": "a@b.com"}`), &body)
		assert.Error(t, err)
	})

	t.Run("malformed email", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{"email": "not-an-email", "name": "x"}`), &body)
		assert.Error(t, err)
	})
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("classified error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, &internal_errors.ErrorWithStatusCode{Message: "nope", StatusCode: http.StatusConflict})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "nope")
	})

	t.Run("unclassified error defaults to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
