package shipengine_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashcdev/shipengine-go/pkg/shipengine"
)

func TestAPIError_Error(t *testing.T) {
	err := &shipengine.APIError{StatusCode: 404, Message: "shipment not found"}
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "shipment not found")

	bare := &shipengine.APIError{StatusCode: 500}
	assert.Contains(t, bare.Error(), "HTTP 500")
}

func TestAPIError_IsMatchesOnStatusCode(t *testing.T) {
	err := fmt.Errorf("calling API: %w", &shipengine.APIError{StatusCode: 429, Message: "slow down"})

	assert.ErrorIs(t, err, &shipengine.APIError{StatusCode: 429})
	assert.NotErrorIs(t, err, &shipengine.APIError{StatusCode: 404})
}

func TestConversionError_Unwrap(t *testing.T) {
	cause := errors.New("cannot unmarshal number")
	err := &shipengine.ConversionError{Index: 2, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "record 2")

	single := &shipengine.ConversionError{Index: -1, Cause: cause}
	assert.NotContains(t, single.Error(), "-1")
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", &shipengine.APIError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &shipengine.APIError{StatusCode: http.StatusBadGateway}, true},
		{"client error", &shipengine.APIError{StatusCode: http.StatusUnprocessableEntity}, false},
		{"wrapped server error", fmt.Errorf("call: %w", &shipengine.APIError{StatusCode: 500}), true},
		{"plain error", errors.New("boom"), false},
		{"missing key", shipengine.ErrMissingAPIKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shipengine.IsRetryable(tt.err))
		})
	}
}
