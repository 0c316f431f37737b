package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestNewEmailNormalizes(t *testing.T) {
	cases := []struct {
		id       string
		raw      string
		expected Email
	}{
		{id: "1", raw: "test@test.test", expected: Email("test@test.test")},
		{id: "2", raw: "Test@Test.Test", expected: Email("test@test.test")},
		{id: "3", raw: "  test@test.test  ", expected: Email("test@test.test")},
		{id: "4", raw: "\tUPPER@CASE.COM\n", expected: Email("upper@case.com")},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			require.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}
