package leadform

import "errors"

var (
	// ErrSubmitInProgress is returned by Controller.Submit while an earlier
	// submission has not resolved yet.
	ErrSubmitInProgress = errors.New("leadform: submission already in progress")

	// ErrAlreadySubmitted is returned by Controller.Submit after a successful
	// submission until the form is dismissed.
	ErrAlreadySubmitted = errors.New("leadform: form already submitted")
)
