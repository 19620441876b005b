package error

// GenericError is implemented by every error the REST layer knows how to
// render without treating it as an internal server error.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
