package tea

import (
	"context"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Sub, like Cmd, performs an I/O operation but is expected to run for the
// life of the program, repeatedly producing messages (a clock tick, a
// filesystem watch). Its signature is identical to Cmd's; the distinction
// is purely about intent.
type Sub = Cmd

// TickMsg is sent in response to a Tick or Every command.
type TickMsg struct {
	Time time.Time

	// tag distinguishes ticks from separate Every subscriptions so that a
	// stale timer firing after cancellation can be recognized and dropped
	// by callers that need to (not enforced by the runtime itself).
	tag int
}

// Tick produces a command that waits for the given duration then sends a
// message carrying the current time.
func Tick(d time.Duration, fn func(t time.Time) Msg) Cmd {
	return func() Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		ts := <-t.C
		return fn(ts)
	}
}

// Every returns a command that ticks in sync with the system clock, so
// that successive ticks aligned to, say, one second apart, always land on
// the wall-clock second boundary rather than drifting relative to when
// the subscription started.
func Every(duration time.Duration, fn func(t time.Time) Msg) Cmd {
	return func() Msg {
		n := time.Now()
		d := n.Truncate(duration).Add(duration).Sub(n)
		t := time.NewTimer(d)
		defer t.Stop()
		ts := <-t.C
		return fn(ts)
	}
}

// BatchMsg is the internal message used to fan a batch of commands out to
// the runtime's command scheduler. Use Batch to produce one.
type BatchMsg []Cmd

// Batch performs a bunch of commands concurrently with no ordering
// guarantees about the order of execution or of the messages they
// produce. Use Sequence if you need an ordering guarantee.
func Batch(cmds ...Cmd) Cmd {
	validCmds := dedupeNilCommands(cmds)
	switch len(validCmds) {
	case 0:
		return nil
	case 1:
		return validCmds[0]
	default:
		return func() Msg {
			return BatchMsg(validCmds)
		}
	}
}

// sequenceMsg is the internal message used to run a group of commands in
// order. Use Sequence to produce one.
type sequenceMsg []Cmd

// Sequence runs the given commands one at a time, in order. Contrast this
// with Batch, which runs commands concurrently.
func Sequence(cmds ...Cmd) Cmd {
	return func() Msg {
		return sequenceMsg(cmds)
	}
}

// sequentially executes cmds in order, invoking each with the message it
// produced. A nil entry in cmds is skipped outright. If a step produces a
// BatchMsg (a nested batch, i.e. a Cmd built with Batch), that sub-batch is
// fanned out concurrently via runBatch and allowed to finish before moving
// on to the next step, so ordering between sequence steps is preserved even
// though the commands within a nested batch still race each other.
func sequentially(ctx context.Context, cmds sequenceMsg, each func(Msg)) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg := cmd()
		if batch, ok := msg.(BatchMsg); ok {
			valid := dedupeNilCommands(batch)
			if len(valid) == 0 {
				continue
			}
			_ = runBatch(ctx, valid, each)
			continue
		}
		each(msg)
	}
}

// dedupeNilCommands strips nil entries from a batch, used both by Batch
// itself and when fanning out a nested batch found inside a Sequence.
func dedupeNilCommands(cmds []Cmd) []Cmd {
	return slices.DeleteFunc(cmds, func(c Cmd) bool {
		return c == nil
	})
}

// runBatch executes every command in a batch concurrently on an errgroup
// and waits for all of them to finish. A command that has not started by
// the time ctx is cancelled is skipped. Panics are not recovered here.
func runBatch(ctx context.Context, cmds []Cmd, send func(Msg)) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range cmds {
		c := c
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			send(c())
			return nil
		})
	}
	return g.Wait()
}
