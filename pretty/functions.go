package pretty

import (
	"fmt"

	"github.com/joshyorko/cratebom/common"
)

// Exit panics with an ExitCode carrying the message; the panic unwinds to
// ExitProtection in the main function, which shows the message and exits
// with the code.
func Exit(code int, format string, rest ...interface{}) error {
	var message string
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	} else {
		message = format
	}
	if code == 0 {
		message = fmt.Sprintf("%s%s%s", Green, message, Reset)
	} else {
		message = fmt.Sprintf("%s%s%s", Red, message, Reset)
	}
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard watches that the condition holds, or exits with the given code.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	return Exit(0, "OK.")
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Log("%s%s%s", Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Note(format string, rest ...interface{}) {
	common.Log("%sNote: %s%s", Grey, fmt.Sprintf(format, rest...), Reset)
}
