package tea

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile identifies the range of colors a terminal supports, from no
// color support at all up through 24-bit true color.
type Profile = termenv.Profile

// detectColorProfile figures out the color profile of the output terminal,
// honoring NO_COLOR, CLICOLOR, and CLICOLOR_FORCE through termenv's own
// environment detection. Output that isn't an *os.File is reported as
// Ascii. termenv reads the process's actual environment; the environ
// argument (the program's WithEnvironment override) is not consulted.
func detectColorProfile(out io.Writer, environ []string) Profile {
	if _, ok := out.(*os.File); !ok {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// environLookup is a small helper for looking up a variable from a program's
// configured environment rather than the process's real one.
func environLookup(environ []string, key string) (string, bool) {
	prefix := key + "="
	for _, kv := range environ {
		if len(kv) > len(prefix) && kv[:len(prefix)] == prefix {
			return kv[len(prefix):], true
		}
	}
	return "", false
}
