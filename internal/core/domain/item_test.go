package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateItemName(t *testing.T) {
	require.NoError(t, ValidateItemName("bolt"))
	require.NoError(t, ValidateItemName("m3 bolt, zinc"))
	require.NoError(t, ValidateItemName(" padded "))
	require.NoError(t, ValidateItemName(strings.Repeat("n", MaxNameLen)))

	for _, name := range []string{"", "bolt\nnut", "bolt\rnut"} {
		require.ErrorIs(t, ValidateItemName(name), ErrValidation)
	}
	require.ErrorIs(t, ValidateItemName(strings.Repeat("n", MaxNameLen+1)), ErrValidation)
}

func TestValidateQuantity(t *testing.T) {
	require.NoError(t, ValidateQuantity(1))
	require.NoError(t, ValidateQuantity(1000))

	require.ErrorIs(t, ValidateQuantity(0), ErrValidation)
	require.ErrorIs(t, ValidateQuantity(-3), ErrValidation)
}
