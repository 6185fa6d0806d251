package log

import (
	"fmt"
	"io"
	"os"

	"github.com/mah0x211/go-getopts/util"
)

// Stdout and Stderr are the destinations used by this package. They
// are variables so that tests can capture the output.
var Stdout io.Writer = os.Stdout
var Stderr io.Writer = os.Stderr

// Verbose enables Debugf output.
var Verbose bool

var exit = util.Exit

func Print(a ...interface{}) {
	fmt.Fprintln(Stdout, a...)
}

func Printf(format string, a ...interface{}) {
	fmt.Fprintf(Stdout, format+"\n", a...)
}

func Error(a ...interface{}) {
	fmt.Fprintln(Stderr, a...)
}

func Errorf(format string, a ...interface{}) {
	fmt.Fprintf(Stderr, format+"\n", a...)
}

func Fatal(a ...interface{}) {
	Error(a...)
	exit(1)
}

func Fatalf(format string, a ...interface{}) {
	Errorf(format, a...)
	exit(1)
}

// Debugf outputs the formatted string to Stdout if Verbose is enabled.
func Debugf(format string, a ...interface{}) {
	if Verbose {
		Printf(format, a...)
	}
}
