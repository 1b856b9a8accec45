package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("130000"))
	assert.True(t, IsDigits("0"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("13a000"))
	assert.False(t, IsDigits("-1"))
	assert.False(t, IsDigits("１３００００"))
}
