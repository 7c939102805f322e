package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) BusinessCode() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Coded is satisfied by every validation failure, including richer errors
// defined by domain packages.
type Coded interface {
	error
	BusinessCode() string
}

func IsBusiness(err error, code string) bool {
	if c, ok := BusinessCode(err); ok {
		return c == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var c Coded
	if errors.As(err, &c) {
		return c.BusinessCode(), true
	}
	return "", false
}
