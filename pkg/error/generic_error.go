package error

// GenericError is implemented by every application error that carries its own
// HTTP mapping. The REST recovery middleware uses it to translate panics into
// proper status codes.
type GenericError interface {
	error
	ErrCode() string
	StatusCode() int
}
