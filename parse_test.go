package tea

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"testing"
)

func testReadAnsiInputs(t *testing.T, input []byte) []Msg {
	t.Helper()
	msgs := make(chan Msg, 64)
	r := bytes.NewReader(input)
	err := readAnsiInputs(context.Background(), msgs, r)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	close(msgs)

	var got []Msg
	for m := range msgs {
		got = append(got, m)
	}
	return got
}

func TestDetectOneMsg(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		w    int
		msg  Msg
	}{
		{"rune", []byte("a"), 1, KeyMsg{Type: KeyRunes, Runes: []rune("a")}},
		{"space", []byte(" "), 1, KeyMsg{Type: KeySpace}},
		{"up arrow", []byte("\x1b[A"), 3, KeyMsg{Type: KeyUp}},
		{"focus", []byte("\x1b[I"), 3, FocusMsg{}},
		{"blur", []byte("\x1b[O"), 3, BlurMsg{}},
		{"ctrl+c", []byte{3}, 1, KeyMsg{Type: KeyCtrlC}},
		{"escape alone", []byte{0x1b}, 1, KeyMsg{Type: KeyEscape}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, msg := detectOneMsg(tc.in, false)
			if w != tc.w {
				t.Fatalf("expected width %d, got %d", tc.w, w)
			}
			if !reflect.DeepEqual(msg, tc.msg) {
				t.Fatalf("expected %#v, got %#v", tc.msg, msg)
			}
		})
	}
}

func TestDetectOneMsgUnknownCSI(t *testing.T) {
	in := []byte("\x1b[----X")
	w, msg := detectOneMsg(in, false)
	if w != len(in) {
		t.Fatalf("expected width %d, got %d", len(in), w)
	}
	u, ok := msg.(unknownCSISequenceMsg)
	if !ok {
		t.Fatalf("expected unknownCSISequenceMsg, got %T", msg)
	}
	if !reflect.DeepEqual([]byte(u), in) {
		t.Fatalf("expected %v, got %v", in, []byte(u))
	}
}

func TestDetectOneMsgUnknownByte(t *testing.T) {
	w, msg := detectOneMsg([]byte{0xfe}, false)
	if w != 1 {
		t.Fatalf("expected width 1, got %d", w)
	}
	if _, ok := msg.(unknownInputByteMsg); !ok {
		t.Fatalf("expected unknownInputByteMsg, got %T", msg)
	}
}

func TestReadAnsiInputsSequence(t *testing.T) {
	got := testReadAnsiInputs(t, []byte("a\x1b[Ab"))
	want := []Msg{
		KeyMsg{Type: KeyRunes, Runes: []rune("a")},
		KeyMsg{Type: KeyUp},
		KeyMsg{Type: KeyRunes, Runes: []rune("b")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestReadAnsiInputsPaste(t *testing.T) {
	got := testReadAnsiInputs(t, []byte("\x1b[200~hello\x1b[201~x"))
	want := []Msg{
		PasteMsg("hello"),
		KeyMsg{Type: KeyRunes, Runes: []rune("x")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestReadAnsiInputsMultiByteRune(t *testing.T) {
	got := testReadAnsiInputs(t, []byte("☃"))
	want := []Msg{KeyMsg{Type: KeyRunes, Runes: []rune("☃")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
