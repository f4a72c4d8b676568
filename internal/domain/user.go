package domain

import "time"

type User struct {
	Id        UserId
	Email     Email
	PassHash  string
	CreatedAt time.Time
}

type Credentials struct {
	Email    Email
	Password Password
}
