package error

import "net/http"

// NotFoundError maps missing resources (unknown jobs, account id sets that
// resolve to nothing) to a 404 through the recovery middleware.
type NotFoundError string

func (err NotFoundError) Error() string {
	return string(err)
}

func (err NotFoundError) ErrCode() string {
	return "NOT_FOUND_ERROR"
}

func (err NotFoundError) StatusCode() int {
	return http.StatusNotFound
}
