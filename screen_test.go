package tea

import "testing"

func TestWindowSize(t *testing.T) {
	p := NewProgram(testOptModel{})
	p.width, p.height = 80, 24

	msg := p.WindowSize()()
	wsm, ok := msg.(WindowSizeMsg)
	if !ok {
		t.Fatalf("expected a WindowSizeMsg, got %T", msg)
	}
	if wsm.Width != 80 || wsm.Height != 24 {
		t.Fatalf("expected 80x24, got %dx%d", wsm.Width, wsm.Height)
	}
}
