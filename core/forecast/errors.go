package forecast

import (
	"errors"
	"fmt"
)

var (
	// ErrDisabled is returned by Predict when model calls are turned off.
	ErrDisabled = errors.New("forecast: model disabled")
	// ErrNoPrediction is returned when a reply holds no JSON array of numbers.
	ErrNoPrediction = errors.New("forecast: no prediction in reply")
)

// HTTPError is a non-2xx reply from the completions endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("forecast: upstream status=%d", e.StatusCode)
	}
	return fmt.Sprintf("forecast: upstream status=%d body=%s", e.StatusCode, e.Body)
}
