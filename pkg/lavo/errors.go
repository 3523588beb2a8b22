package lavo

import "errors"

// AuthError indicates an authentication response that carried no token.
// Detail is the server-supplied message, or a generic fallback when the
// response had none.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return "lavo: authentication failed: " + e.Detail
}

// IsAuthError reports whether err wraps an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
