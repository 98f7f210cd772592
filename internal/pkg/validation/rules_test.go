package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("+1234567890"))
	assert.True(t, IsValidMobile("1234567"))
	assert.True(t, IsValidMobile(""))

	assert.False(t, IsValidMobile("123456"))
	assert.False(t, IsValidMobile("12345678901234567"))
	assert.False(t, IsValidMobile("+12-3456789"))
	assert.False(t, IsValidMobile("phone"))
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("M"))
	assert.True(t, IsValidGender("F"))
	assert.True(t, IsValidGender("O"))

	assert.False(t, IsValidGender("m"))
	assert.False(t, IsValidGender("X"))
	assert.False(t, IsValidGender(""))
	assert.False(t, IsValidGender("MF"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Al"))
	assert.True(t, IsValidName("Alice Williams"))

	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName(""))
}

func TestIsValidBatchYear(t *testing.T) {
	now := time.Now().Year()

	assert.True(t, IsValidBatchYear(1990))
	assert.True(t, IsValidBatchYear(now))
	assert.True(t, IsValidBatchYear(now+1))

	assert.False(t, IsValidBatchYear(1989))
	assert.False(t, IsValidBatchYear(now+2))
	assert.False(t, IsValidBatchYear(0))
}
