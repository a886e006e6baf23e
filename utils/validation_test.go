package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHandle(t *testing.T) {
	assert.True(t, ValidateHandle("booth-1"))
	assert.True(t, ValidateHandle("  booth@sakecha.example  "))

	assert.False(t, ValidateHandle(""))
	assert.False(t, ValidateHandle("   "))
	assert.False(t, ValidateHandle("booth one"))
}
