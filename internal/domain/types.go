package domain

type (
	Email    = string
	Password = string
	UserId   = int64
	PostId   = int64
)
