package ports

import (
	"context"
	"fmt"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
)

// WeatherProvider fetches the two weather signals for a coordinate.
// The two calls are independent and safe to run concurrently.
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, coord domain.Coordinate) (domain.WeatherSignals, error)
	FetchAstronomy(ctx context.Context, coord domain.Coordinate) (domain.SuntimeSignal, error)
}

// MissingFieldError indicates a required field was absent from a
// provider payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in provider response", e.Field)
}

// ParseError indicates a provider field did not match its expected
// format, e.g. a sunrise timestamp that is not 12-hour clock time.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse field %q value %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
