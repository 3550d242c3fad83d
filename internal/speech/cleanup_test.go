package speech_test

import (
	"testing"

	"github.com/Vovarama1992/super_bot/internal/speech"
)

func TestCleanForTTS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown", "**Bold** and *italic* and _under_", "Bold and italic and under"},
		{"bullets", "• one\n● two\n► three", "one two three"},
		{"emoji", "Hello 😀🚀 world 🇰🇭", "Hello world"},
		{"symbols", "#tag @user a|b <x>", "tag user ab x"},
		{"whitespace", "  a \n\n\t b  ", "a b"},
		{"khmer untouched", "សួស្តី ពិភពលោក", "សួស្តី ពិភពលោក"},
		{"only junk", "** 😀 #", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := speech.CleanForTTS(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitChunks(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		got := speech.SplitChunks("hello world", 200)
		if len(got) != 1 || got[0] != "hello world" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("splits on spaces", func(t *testing.T) {
		got := speech.SplitChunks("aaaa bbbb cccc dddd", 10)
		for _, c := range got {
			if len([]rune(c)) > 10 {
				t.Errorf("chunk too long: %q", c)
			}
		}
		if len(got) != 2 || got[0] != "aaaa bbbb" || got[1] != "cccc dddd" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("hard cut without breaks", func(t *testing.T) {
		got := speech.SplitChunks("កខគឃងចឆជឈញ", 4)
		if len(got) != 3 {
			t.Fatalf("got %d chunks: %q", len(got), got)
		}
		if got[0] != "កខគឃ" || got[2] != "ឈញ" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := speech.SplitChunks("   ", 10); len(got) != 0 {
			t.Errorf("got %q", got)
		}
	})

	t.Run("non-positive max uses default chunk size", func(t *testing.T) {
		for _, max := range []int{0, -5} {
			got := speech.SplitChunks("hello world", max)
			if len(got) != 1 || got[0] != "hello world" {
				t.Errorf("max=%d: got %q", max, got)
			}
		}
	})
}
