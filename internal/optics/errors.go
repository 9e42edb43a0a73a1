package optics

import "errors"

// InputError marks inputs the engine refuses to compute on: non-finite
// coordinates, non-positive dimensions, coincident pupils. These are caller
// bugs, never retried.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid measurement input: " + e.Reason
}

func newInputError(reason string) error {
	return &InputError{Reason: reason}
}

// IsInputError reports whether err is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
