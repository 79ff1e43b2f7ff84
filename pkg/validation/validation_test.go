package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitLength(t *testing.T) {
	tests := []struct {
		name   string
		value  int64
		length int
		want   bool
	}{
		{"ten digit phone", 9876543210, 10, true},
		{"nine digits is too short", 987654321, 10, false},
		{"eleven digits is too long", 98765432101, 10, false},
		{"six digit pin", 560037, 6, true},
		{"five digits", 56003, 6, false},
		{"seven digits", 5600371, 6, false},
		{"single digit", 7, 1, true},
		{"power of ten boundary", 1000000000, 10, true},
		{"below power of ten boundary", 999999999, 10, false},
		{"zero never matches", 0, 1, false},
		{"negative never matches", -123456, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DigitLength(tt.value, tt.length))
		})
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"mahesh@example.com",
		"first.last@example.co",
		"with_underscore@sub.example.org",
		"dash-ed@my-domain.net",
	}
	for _, email := range valid {
		assert.True(t, Email(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"toolong@example.info", // tld over 3 letters
		"spaces in@example.com",
		"@example.com",
	}
	for _, email := range invalid {
		assert.False(t, Email(email), email)
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("Mahesh@123"))
	assert.True(t, Password("Abcdefgh"))
	assert.True(t, Password("aB3$!#%*?&aB3"))

	assert.False(t, Password("short1"), "too short and no uppercase")
	assert.False(t, Password("alllowercase1"), "no uppercase")
	assert.False(t, Password("ALLUPPERCASE1"), "no lowercase")
	assert.False(t, Password(strings.Repeat("Ab", 15)), "30 chars is over the max")
	assert.False(t, Password("Has Space1"), "space not in allowed set")
	assert.False(t, Password("Tilde~bad1"), "~ not in allowed set")
}

func TestStructDigitlenTag(t *testing.T) {
	type probe struct {
		PhoneNo int64 `validate:"required,digitlen=10"`
		PinCode int64 `validate:"required,digitlen=6"`
	}

	require.NoError(t, Struct(probe{PhoneNo: 9876543210, PinCode: 560037}))

	err := Struct(probe{PhoneNo: 123, PinCode: 560037})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone_no should be exactly 10 digits")

	err = Struct(probe{PhoneNo: 9876543210, PinCode: 12345678})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pin_code should be exactly 6 digits")
}
