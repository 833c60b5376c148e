package discipline

import "errors"

var (
	ErrCaseNotFound      = errors.New("disciplinary case not found")
	ErrCaseAlreadyClosed = errors.New("disciplinary case already closed")
	ErrCaseNotClosed     = errors.New("disciplinary case is not closed")
)
