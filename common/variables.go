package common

import (
	"time"
)

const (
	Version = `v0.9.2`
)

var (
	debugFlag      bool
	traceFlag      bool
	silentFlag     bool
	LogLinenumbers bool
	LogHides       []string
	When           int64
)

func init() {
	When = time.Now().Unix()
}

// DefineVerbosity sets the silent/debug/trace flags in one call. Trace
// implies debug, and silent wins over both.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = !silent && (debug || trace)
	traceFlag = !silent && trace
}

func DebugFlag() bool {
	return debugFlag
}

func TraceFlag() bool {
	return traceFlag
}

func Silent() bool {
	return silentFlag
}
