package domain

// Vote direction values accepted on the wire: 1 casts a vote, 0 retracts it.
const (
	DirRetract = 0
	DirCast    = 1
)

// Vote is identified by its (user, post) pair. At most one row per pair.
type Vote struct {
	UserId UserId
	PostId PostId
}
