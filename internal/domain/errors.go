package domain

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tripcompass/trip-info-service/internal/infrastructure/retry"
)

// Sentinel errors for the trip info pipeline.
var (
	// ErrTimeout indicates an upstream call exceeded its per-call budget.
	ErrTimeout = errors.New("upstream call timed out")

	// ErrAuth indicates the Flights&Stays credential could not be obtained.
	ErrAuth = errors.New("authentication failed")

	// ErrGeocodeFailed indicates a place name could not be turned into coordinates.
	ErrGeocodeFailed = errors.New("geocode failed")

	// ErrNoAirportFound indicates no airport could be resolved for a location.
	ErrNoAirportFound = errors.New("no airport found")

	// ErrNoHotelOffers indicates no nearby hotel had a bookable offer.
	ErrNoHotelOffers = errors.New("no hotel offers found")

	// ErrMalformedResponse indicates a provider payload is missing expected fields.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderNotConfigured indicates a provider has no credentials.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrRateLimited indicates the provider answered 429.
	ErrRateLimited = errors.New("rate limited by provider")
)

// UpstreamError is a non-2xx answer (or transport failure, Code 0) from a provider.
type UpstreamError struct {
	Provider string
	Code     int
	Message  string
}

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(provider string, code int, message string) *UpstreamError {
	return &UpstreamError{Provider: provider, Code: code, Message: message}
}

func (e *UpstreamError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s: upstream unreachable: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Provider, e.Code, e.Message)
}

// Is makes a 429 answer match ErrRateLimited.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrRateLimited && e.Code == http.StatusTooManyRequests
}

// Retryable reports whether another attempt could succeed.
func (e *UpstreamError) Retryable() bool {
	return e.Code == 0 || e.Code < 200 || e.Code > 299
}

// NewMalformedResponse returns an ErrMalformedResponse that the executor
// propagates without retrying.
func NewMalformedResponse(provider, detail string) error {
	return retry.NewPermanent(fmt.Errorf("%s: %w: %s", provider, ErrMalformedResponse, detail))
}

// NewAuthError wraps cause as ErrAuth.
func NewAuthError(cause error) error {
	return fmt.Errorf("%w: %w", ErrAuth, cause)
}

// ValidationError represents a validation failure for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsRetryable reports whether the executor should try the call again:
// timeouts and upstream errors are, everything else is not. An ErrAuth is
// final even when its cause is a timeout or an upstream error.
func IsRetryable(err error) bool {
	if err == nil || retry.IsPermanent(err) || errors.Is(err, ErrAuth) {
		return false
	}
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Retryable()
	}
	return false
}
