package jobdesc

import (
	"errors"
	"strings"
)

// KindMalformed is reported to callers for every MalformedError.
const KindMalformed = "MalformedJobDescription"

// ErrMalformed matches any *MalformedError through errors.Is.
var ErrMalformed = errors.New("malformed job description")

// MalformedError lists why a document could not become a JobDescription.
type MalformedError struct {
	Problems []string
	Err      error
}

func (e *MalformedError) Error() string {
	if len(e.Problems) == 0 {
		if e.Err != nil {
			return ErrMalformed.Error() + ": " + e.Err.Error()
		}
		return ErrMalformed.Error()
	}
	return ErrMalformed.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *MalformedError) Kind() string {
	return KindMalformed
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

func malformed(err error, problems ...string) *MalformedError {
	return &MalformedError{Problems: problems, Err: err}
}
