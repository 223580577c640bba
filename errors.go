package tea

import "errors"

// ErrProgramPanic is returned by [Program.Run] when the program recovers
// from a panic in the update function, a command, or the renderer.
var ErrProgramPanic = errors.New("tea: program experienced a panic")

// ErrProgramKilled is returned by [Program.Run] when the program is killed,
// either via [Program.Kill] or via its external context being cancelled.
// Errors from writing to the terminal do not stop the program and are not
// reported by Run.
var ErrProgramKilled = errors.New("tea: program was killed")

// ErrInterrupted is returned by [Program.Run] when the program receives a
// SIGINT, or an [InterruptMsg].
var ErrInterrupted = errors.New("tea: program was interrupted")
