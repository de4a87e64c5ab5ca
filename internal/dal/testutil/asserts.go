package testutil

import (
	"github.com/stretchr/testify/assert"
)

// ErrorIsAndContains asserts that err wraps wantErr and mentions contains in its message.
func ErrorIsAndContains(wantErr error, contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, msgAndArgs ...interface{}) bool {
		return assert.ErrorIs(t, err, wantErr, msgAndArgs...) && assert.ErrorContains(t, err, contains, msgAndArgs...)
	}
}

// ErrorIs asserts that err wraps wantErr.
func ErrorIs(wantErr error) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, msgAndArgs ...interface{}) bool {
		return assert.ErrorIs(t, err, wantErr, msgAndArgs...)
	}
}
