package jwt

import (
	"testing"
	"time"
)

var secretKey string = "testJwtKey"

func TestDecodeTokenCorrect(t *testing.T) {
	jwt := New(secretKey, 10*time.Second)
	token, err := jwt.NewToken(42)
	if err != nil {
		t.Fatal(err)
	}

	userId, err := jwt.DecodeToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if userId != 42 {
		t.Errorf("decoded user id %d != 42", userId)
	}
}

func TestDecodeTokenExpired(t *testing.T) {
	jwt := New(secretKey, -time.Second)
	token, err := jwt.NewToken(1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = jwt.DecodeToken(token); err == nil {
		t.Errorf("we shouldn't decode expired token")
	}
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = New("invalidSecret", 10*time.Second).DecodeToken(token); err == nil {
		t.Errorf("we shouldn't decode token with invalid secret")
	}
}

func TestDecodeTokenGarbage(t *testing.T) {
	if _, err := New(secretKey, 10*time.Second).DecodeToken("not.a.token"); err == nil {
		t.Errorf("we shouldn't decode malformed token")
	}
}
