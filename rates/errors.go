package rates

import "errors"

// ErrIncompleteRates at least one requested currency came back without a usable rate.
var ErrIncompleteRates = errors.New("incomplete rates")

// ErrSuperseded a newer Refresh started before this one finished, so its result was dropped.
var ErrSuperseded = errors.New("superseded by a newer fetch")

const fallbackMessage = "unable to fetch rates"

// FetchError is returned by FetchRates when the rate table could not be built.
// Message is what gets shown to the user.
type FetchError struct {
	Message string
	Err     error
}

func newFetchError(err error) *FetchError {
	message := fallbackMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &FetchError{Message: message, Err: err}
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
