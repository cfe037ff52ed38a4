package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type input struct {
		Address string `validate:"required"`
		Page    int    `validate:"omitempty,gte=1"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := Validate(input{Address: "0xAAA", Page: 1})
		assert.NoError(t, err)
	})

	t.Run("missing required field fails", func(t *testing.T) {
		err := Validate(input{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Address'")
	})

	t.Run("multiple failures are all reported", func(t *testing.T) {
		err := Validate(input{Page: -1})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Address'")
		assert.Contains(t, err.Error(), "'Page'")
	})
}
