//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type primeSettings struct {
	PrimeBits uint `validate:"primebits"`
}

func TestPrimeBitsValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	tests := []struct {
		bits  uint
		valid bool
	}{
		{256, true},
		{512, true},
		{1024, true},
		{2048, true},
		{0, false},
		{100, false},
		{1000, false},
		{4096, false},
	}

	for _, tt := range tests {
		err := v.Struct(&primeSettings{PrimeBits: tt.bits})
		if tt.valid {
			assert.NoError(t, err, "bits=%d", tt.bits)
		} else {
			assert.Error(t, err, "bits=%d", tt.bits)
		}
	}
}
