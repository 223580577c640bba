package tea

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
)

type testOptModel struct{}

func (testOptModel) Init() Cmd               { return nil }
func (testOptModel) Update(Msg) (Model, Cmd) { return testOptModel{}, nil }
func (testOptModel) View() string            { return "" }

func TestOptions(t *testing.T) {
	t.Run("output", func(t *testing.T) {
		var b bytes.Buffer
		p := NewProgram(testOptModel{}, WithOutput(&b))
		if p.output != &b {
			t.Errorf("expected output to be the custom buffer, got %v", p.output)
		}
	})

	t.Run("custom input", func(t *testing.T) {
		var b bytes.Buffer
		p := NewProgram(testOptModel{}, WithInput(&b))
		if p.input != &b {
			t.Errorf("expected input to custom, got %v", p.input)
		}
		if p.inputType != customInput {
			t.Errorf("expected startup options to have custom input set, got %v", p.inputType)
		}
	})

	t.Run("renderer", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithoutRenderer())
		if _, ok := p.renderer.(NilRenderer); !ok {
			t.Errorf("expected renderer to be a NilRenderer, got %v", p.renderer)
		}
	})

	t.Run("without signals", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithoutSignals())
		if atomic.LoadUint32(&p.ignoreSignals) == 0 {
			t.Errorf("ignore signals should have been set")
		}
	})

	t.Run("filter", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithFilter(func(_ Model, msg Msg) Msg { return msg }))
		if p.filter == nil {
			t.Errorf("expected filter to be set")
		}
	})

	t.Run("external context", func(t *testing.T) {
		extCtx, extCancel := context.WithCancel(context.Background())
		defer extCancel()

		p := NewProgram(testOptModel{}, WithContext(extCtx))
		if p.externalCtx != extCtx {
			t.Errorf("expected passed in external context, got default")
		}
	})

	t.Run("input options", func(t *testing.T) {
		exercise := func(t *testing.T, opt ProgramOption, expect inputType) {
			p := NewProgram(testOptModel{}, opt)
			if p.inputType != expect {
				t.Errorf("expected input type %s, got %s", expect, p.inputType)
			}
		}

		t.Run("tty input", func(t *testing.T) {
			exercise(t, WithInputTTY(), ttyInput)
		})

		t.Run("custom input", func(t *testing.T) {
			var b bytes.Buffer
			exercise(t, WithInput(&b), customInput)
		})
	})

	t.Run("startup options", func(t *testing.T) {
		exercise := func(t *testing.T, opt ProgramOption, expect startupOptions) {
			p := NewProgram(testOptModel{}, opt)
			if !p.startupOptions.has(expect) {
				t.Errorf("expected startup options have %v, got %v", expect, p.startupOptions)
			}
		}

		t.Run("alt screen", func(t *testing.T) {
			exercise(t, WithAltScreen(), withAltScreen)
		})

		t.Run("bracketed paste disabled", func(t *testing.T) {
			exercise(t, WithoutBracketedPaste(), withoutBracketedPaste)
		})

		t.Run("ansi compression", func(t *testing.T) {
			exercise(t, WithANSICompressor(), withANSICompressor)
		})

		t.Run("report focus", func(t *testing.T) {
			exercise(t, WithReportFocus(), withReportFocus)
		})

		t.Run("without catch panics", func(t *testing.T) {
			exercise(t, WithoutCatchPanics(), withoutCatchPanics)
		})

		t.Run("without signal handler", func(t *testing.T) {
			exercise(t, WithoutSignalHandler(), withoutSignalHandler)
		})
	})

	t.Run("multiple", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithMouseAllMotion(), WithoutBracketedPaste(), WithAltScreen(), WithInputTTY())
		for _, opt := range []startupOptions{withMouseAllMotion, withoutBracketedPaste, withAltScreen} {
			if !p.startupOptions.has(opt) {
				t.Errorf("expected startup options have %v, got %v", opt, p.startupOptions)
			}
		}
		if p.inputType != ttyInput {
			t.Errorf("expected input to be tty, got %v", p.inputType)
		}
	})

	t.Run("mouse motion is exclusive", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithMouseCellMotion(), WithMouseAllMotion())
		if p.startupOptions.has(withMouseCellMotion) {
			t.Errorf("expected cell motion to be cleared by all motion")
		}
		if !p.startupOptions.has(withMouseAllMotion) {
			t.Errorf("expected all motion to be set")
		}
	})

	t.Run("fps clamped", func(t *testing.T) {
		p := NewProgram(testOptModel{}, WithFPS(1000))
		if p.fps != maxFPS {
			t.Errorf("expected fps to clamp to %d, got %d", maxFPS, p.fps)
		}
	})
}
