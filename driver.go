package tea

import (
	"context"
	"io"

	"github.com/muesli/cancelreader"
	"github.com/mattn/go-localereader"
)

// driver decodes terminal input into Msgs. It wraps a cancelreader so a
// blocked read can be interrupted during shutdown, and a localereader so
// non-UTF8 locales are transcoded before parsing.
type driver struct {
	rd    cancelreader.CancelReader
	trace bool
}

// newDriver wraps r for cancelable, locale-aware reads.
func newDriver(r io.Reader, trace bool) (*driver, error) {
	cr, err := cancelreader.NewReader(localereader.NewReader(r))
	if err != nil {
		return nil, err
	}
	return &driver{rd: cr, trace: trace}, nil
}

// Cancel interrupts a blocked Read, if any.
func (d *driver) Cancel() bool {
	return d.rd.Cancel()
}

// Close closes the underlying reader.
func (d *driver) Close() error {
	return d.rd.Close()
}

// readLoop blocks decoding input into msgs until ctx is cancelled or the
// reader errors out (which happens on Close/Cancel during shutdown).
func (d *driver) readLoop(ctx context.Context, msgs chan<- Msg) error {
	return readAnsiInputs(ctx, msgs, d.rd)
}
