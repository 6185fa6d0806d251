package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExit(t *testing.T) {
	fn := goexit
	called := false
	goexit = func() {
		called = true
	}
	defer func() {
		goexit = fn
		ExitCode = 0
	}()

	// test that Exit records the code and stops the goroutine
	Exit(2)
	assert.True(t, called)
	assert.Equal(t, 2, ExitCode)
}

func TestGetenv(t *testing.T) {
	assert.NoError(t, os.Setenv("GO_GETOPTS_TEST_ENV", "value"))
	defer os.Unsetenv("GO_GETOPTS_TEST_ENV")

	// test that a defined variable is returned
	v, found := Getenv("GO_GETOPTS_TEST_ENV")
	assert.True(t, found)
	assert.Equal(t, "value", v)

	// test that an undefined variable is reported as not found
	assert.NoError(t, os.Unsetenv("GO_GETOPTS_TEST_ENV"))
	v, found = Getenv("GO_GETOPTS_TEST_ENV")
	assert.False(t, found)
	assert.Equal(t, "", v)
}
