package pulse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a parameter set cannot be turned
	// into a sampled pulse.
	ErrInvalidArgument = errors.New("pulse: invalid argument")

	// ErrUnknownPulseType is returned for a parameter set outside the known kinds.
	ErrUnknownPulseType = errors.New("pulse: unknown pulse type")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// invalid marks an error from a lower layer as an invalid argument while
// keeping the original in the chain.
func invalid(err error) error {
	if err == nil || errors.Is(err, ErrInvalidArgument) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
