package tea

import "runtime"

// isWindows reports whether the current runtime is Windows, where SIGWINCH
// and job-control signals don't exist and several tty paths diverge.
func isWindows() bool {
	return runtime.GOOS == "windows"
}

func clamp(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
