package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorTypes tests all sentinel errors
func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errString string
	}{
		{"ErrResourceLimit", ErrResourceLimit, "RESOURCE_LIMIT"},
		{"ErrInvalidOption", ErrInvalidOption, "INVALID_OPTION"},
		{"ErrRevisionNotFound", ErrRevisionNotFound, "REVISION_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Equal(t, tt.errString, tt.err.Error())
		})
	}
}

func TestOptionError(t *testing.T) {
	tests := []struct {
		name        string
		err         *OptionError
		expectedMsg string
	}{
		{
			name:        "with reason",
			err:         &OptionError{Option: "color", Value: "sometimes", Reason: "want auto, always or never"},
			expectedMsg: "invalid --color sometimes: want auto, always or never",
		},
		{
			name:        "without reason",
			err:         &OptionError{Option: "max-size", Value: int64(-1)},
			expectedMsg: "invalid --max-size -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrInvalidOption))
			assert.False(t, errors.Is(tt.err, ErrResourceLimit))
		})
	}
}

func TestSizeLimitError(t *testing.T) {
	err := &SizeLimitError{Source: "poem.txt", Size: 42, Limit: 10}

	assert.Equal(t, "poem.txt: 42 bytes exceeds the 10 byte limit", err.Error())
	assert.True(t, errors.Is(err, ErrResourceLimit))

	var target *SizeLimitError
	wrapped := errors.Join(errors.New("outer"), err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "poem.txt", target.Source)
}
