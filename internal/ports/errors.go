package ports

// UserFacingError is implemented by client errors that carry text safe
// to show directly to the candidate (e.g. server-reported messages).
type UserFacingError interface {
	error
	UserMessage() string
}
