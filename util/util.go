package util

import (
	"os"
	"runtime"
)

var goexit = runtime.Goexit

// ExitCode holds the code passed to the last Exit call so that the
// caller waiting on the exiting goroutine can report it.
var ExitCode int

// Exit records code and stops the calling goroutine.
func Exit(code int) {
	ExitCode = code
	goexit()
}

// Getenv returns the value of the environment variable name and
// whether it is defined.
func Getenv(name string) (string, bool) {
	return os.LookupEnv(name)
}
