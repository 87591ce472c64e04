package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func fixedSize(rows, cols int) Sizer {
	return func() (int, int, error) { return rows, cols, nil }
}

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-4, "0"},
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{1000, "1000"},
		{65535, "65535"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		if buf.String() != tt.want {
			t.Errorf("writeInt(%d): expected %q, got %q", tt.n, tt.want, buf.String())
		}
	}
}

func TestANSI_Sequences(t *testing.T) {
	tests := []struct {
		name string
		draw func(a *ANSI)
		want string
	}{
		{"hide cursor", func(a *ANSI) { a.HideCursor() }, "\x1b[?25l"},
		{"move origin", func(a *ANSI) { a.MoveCursor(0, 0) }, "\x1b[1;1H"},
		{"move", func(a *ANSI) { a.MoveCursor(23, 79) }, "\x1b[24;80H"},
		{"dim green", func(a *ANSI) { a.SetColor(ColorGreen, ColorBlack, WeightEstablished) }, "\x1b[22;32m"},
		{"bright white", func(a *ANSI) { a.SetColor(ColorWhite, ColorBlack, WeightNormal) }, "\x1b[1;37m"},
		{"clear", func(a *ANSI) { a.Clear() }, "\x1b[2J"},
		{"reset", func(a *ANSI) { a.Reset() }, "\x1bc"},
		{"char", func(a *ANSI) { a.DrawChar('Z') }, "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			a := NewANSI(&buf, fixedSize(24, 80))
			tt.draw(a)
			if err := a.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestANSI_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, fixedSize(24, 80))

	a.MoveCursor(2, 3)
	a.SetColor(ColorWhite, ColorBlack, WeightNormal)
	a.DrawChar('x')

	if buf.Len() != 0 {
		t.Fatalf("Expected no output before flush, got %q", buf.String())
	}

	a.Flush()
	want := "\x1b[3;4H\x1b[1;37mx"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestANSI_SizeFromSizer(t *testing.T) {
	a := NewANSI(&bytes.Buffer{}, fixedSize(24, 80))
	rows, cols, err := a.Size()
	if err != nil || rows != 24 || cols != 80 {
		t.Errorf("Expected 24x80, got %dx%d (err=%v)", rows, cols, err)
	}

	boom := errors.New("no tty")
	a = NewANSI(&bytes.Buffer{}, func() (int, int, error) { return 0, 0, boom })
	if _, _, err := a.Size(); !errors.Is(err, boom) {
		t.Errorf("Expected sizer error, got %v", err)
	}
}

func TestANSI_CloseFlushesAndIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, fixedSize(24, 80))
	a.DrawChar('q')
	a.Close()
	a.Close()

	if buf.String() != "q" {
		t.Errorf("Expected pending output flushed on close, got %q", buf.String())
	}
}

func TestPostCoalesced_KeepsLatest(t *testing.T) {
	ch := make(chan Event, 1)
	postCoalesced(ch, Event{Type: EventResize})
	postCoalesced(ch, Event{Type: EventInterrupt})

	ev := <-ch
	if ev.Type != EventInterrupt {
		t.Errorf("Expected latest event to be pending, got %v", ev.Type)
	}
	select {
	case ev := <-ch:
		t.Errorf("Expected single pending event, got extra %v", ev.Type)
	default:
	}
}

func TestPostCoalesced_InterruptSurvivesResize(t *testing.T) {
	ch := make(chan Event, 1)
	postCoalesced(ch, Event{Type: EventInterrupt})
	postCoalesced(ch, Event{Type: EventResize})
	postCoalesced(ch, Event{Type: EventResize})

	if ev := <-ch; ev.Type != EventInterrupt {
		t.Errorf("Expected pending interrupt kept, got %v", ev.Type)
	}
	select {
	case ev := <-ch:
		t.Errorf("Expected single pending event, got extra %v", ev.Type)
	default:
	}
}
