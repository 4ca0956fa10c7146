package httperr

import "errors"

// BusinessError is a user-correctable failure raised by a usecase and mapped
// to a 400 at the handler boundary. Message may be empty; Code never is.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness returns the business error carried by err, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
