package checkout

// ProviderError reports a failed provider call. Message is the
// user-facing text; Cause carries the provider's own error, which may
// contain account detail and is logged server-side only.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// InvariantError reports an internal state the validator is supposed
// to have made impossible. It fails only the current request and marks
// a defect in this code, not bad user input.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}
