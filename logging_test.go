package tea

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	prefix := "logprefix"
	f, err := LogToFile(path, prefix)
	assert.NoError(t, err)

	log.SetFlags(log.Lmsgprefix)
	log.Println("some test log")
	assert.NoError(t, f.Close())

	out, err := os.ReadFile(path)
	assert.NoError(t, err)

	assert.Equal(t, prefix+" some test log\n", string(out))
}

func TestTraceEnabled(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    bool
	}{
		{"unset", nil, false},
		{"empty", []string{"TEA_TRACE="}, false},
		{"zero", []string{"TEA_TRACE=0"}, false},
		{"one", []string{"TEA_TRACE=1"}, true},
		{"word", []string{"TEA_TRACE=yes"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := traceEnabled(tc.environ); got != tc.want {
				t.Errorf("traceEnabled(%v) = %v, want %v", tc.environ, got, tc.want)
			}
		})
	}
}
