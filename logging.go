package tea

import (
	"fmt"
	"log"
	"os"
)

// LogToFile sets up a default logger to log to the given file. This is
// helpful as we can't print to stdout since the output is used as the
// terminal's alternate screen buffer. The returned file should be closed
// (generally with a defer) once logging is no longer needed.
//
//	f, err := tea.LogToFile("debug.log", "debug")
//	if err != nil {
//	    fmt.Println("fatal:", err)
//	    os.Exit(1)
//	}
//	defer f.Close()
func LogToFile(path string, prefix string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	if prefix != "" {
		prefix += " "
	}
	log.SetPrefix(prefix)
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return f, nil
}

// traceEnabled reports whether TEA_TRACE is set in the program's
// environment. When enabled, the output writer logs every write it sends,
// which is useful when troubleshooting a terminal that doesn't behave the
// way the runtime expects. The input driver receives the flag but does not
// log the bytes it reads.
func traceEnabled(environ []string) bool {
	v, ok := environLookup(environ, "TEA_TRACE")
	return ok && v != "" && v != "0"
}
