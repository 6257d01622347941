package models

import "net/http"

// ErrorKind classifies every failure a route can report.
type ErrorKind int

const (
	KindStoreFailure ErrorKind = iota
	KindInvalidInput
	KindUnauthenticated
	KindForbidden
	KindAlreadyExists
)

// Status is the single place failure kinds become HTTP status codes.
func (k ErrorKind) Status() int {
	switch k {
	case KindInvalidInput, KindAlreadyExists:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindAlreadyExists:
		return "already_exists"
	default:
		return "store_failure"
	}
}
