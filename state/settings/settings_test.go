package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReader(t *testing.T) {
	reader := Map{
		BlockValidationRulesKey: "NofX:1,intkey",
	}

	value, err := reader.Get(BlockValidationRulesKey)
	require.NoError(t, err)
	assert.Equal(t, "NofX:1,intkey", value)

	_, err = reader.Get("forge.validator.unknown")
	assert.ErrorIs(t, err, ErrNotSet)
}
