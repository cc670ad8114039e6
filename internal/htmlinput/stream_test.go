package htmlinput

import (
	"testing"
	"unicode/utf16"
)

func collect(s *Stream) []CodePoint {
	var out []CodePoint
	for {
		cp, _, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, cp)
		if cp.Kind == EOF {
			return out
		}
	}
}

func TestStream_ASCII(t *testing.T) {
	s := New()
	s.Feed(utf16.Encode([]rune("ab")))
	s.FeedEnd()
	cps := collect(s)
	if len(cps) != 3 || cps[0].R != 'a' || cps[1].R != 'b' || cps[2].Kind != EOF {
		t.Fatalf("unexpected: %+v", cps)
	}
}

func TestStream_CRLFNormalization(t *testing.T) {
	s := New()
	s.Feed(utf16.Encode([]rune("a\r\nb\rc")))
	s.FeedEnd()
	cps := collect(s)
	var got []rune
	for _, cp := range cps {
		if cp.Kind == Scalar {
			got = append(got, cp.R)
		}
	}
	want := []rune{'a', '\n', 'b', '\n', 'c'}
	if len(got) != len(want) {
		t.Fatalf("got %q want %q", string(got), string(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %q want %q", string(got), string(want))
		}
	}
}

func TestStream_SurrogatePairing(t *testing.T) {
	s := New()
	s.Feed(utf16.Encode([]rune("🚀")))
	s.FeedEnd()
	cps := collect(s)
	if len(cps) != 2 || cps[0].Kind != Scalar || cps[0].R != '🚀' {
		t.Fatalf("unexpected: %+v", cps)
	}
}

func TestStream_LoneSurrogate(t *testing.T) {
	s := New()
	s.Feed([]uint16{0xD800})
	s.FeedEnd()
	cps := collect(s)
	if len(cps) != 2 || cps[0].Kind != SurrogateHalf {
		t.Fatalf("expected lone surrogate classification, got %+v", cps)
	}
}

func TestStream_Starvation(t *testing.T) {
	s := New()
	s.Feed(utf16.Encode([]rune("a")))
	_, _, ok := s.Next() // consumes 'a'
	if !ok {
		t.Fatalf("expected ok for buffered char")
	}
	_, _, ok = s.Next()
	if ok {
		t.Fatalf("expected starvation before feed_end")
	}
	s.FeedEnd()
	cp, _, ok := s.Next()
	if !ok || cp.Kind != EOF {
		t.Fatalf("expected EOF after feed_end, got %+v ok=%v", cp, ok)
	}
}

func TestCodePoint_NonCharacter(t *testing.T) {
	cp := CodePoint{Kind: Scalar, R: 0xFDD0}
	if !cp.IsNonCharacter() {
		t.Errorf("expected U+FDD0 to be a noncharacter")
	}
	cp2 := CodePoint{Kind: Scalar, R: 0x1FFFE}
	if !cp2.IsNonCharacter() {
		t.Errorf("expected U+1FFFE to be a noncharacter")
	}
	cp3 := CodePoint{Kind: Scalar, R: 'a'}
	if cp3.IsNonCharacter() {
		t.Errorf("expected 'a' to not be a noncharacter")
	}
}

func TestCodePoint_C0Control(t *testing.T) {
	if (CodePoint{Kind: Scalar, R: '\t'}).IsC0Control() {
		t.Errorf("tab must not be classified as C0 control")
	}
	if !(CodePoint{Kind: Scalar, R: 0x01}).IsC0Control() {
		t.Errorf("U+0001 must be classified as C0 control")
	}
}
