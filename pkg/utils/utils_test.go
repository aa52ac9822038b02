package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptRoundtrip(t *testing.T) {
	hashed, err := Crypt("hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hashed)

	assert.True(t, VerifyPassword("hunter2hunter2", hashed))
	assert.False(t, VerifyPassword("wrong password", hashed))
}

func TestConvertStringToInt64(t *testing.T) {
	got, err := ConvertStringToInt64("12345")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got)

	_, err = ConvertStringToInt64("not a number")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-7", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseID(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.in)
		}
	}
}
