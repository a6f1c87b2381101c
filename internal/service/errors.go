package service

// ValidationError is a purely local failure detected before any network
// call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
