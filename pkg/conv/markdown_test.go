package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain answer",
			input:    "SEE YOU SOON",
			expected: "SEE YOU SOON\n",
		},
		{
			name:     "bold text",
			input:    "**bold**",
			expected: "<strong>bold</strong>\n",
		},
		{
			name:     "inline code",
			input:    "`/reset`",
			expected: "<code>/reset</code>\n",
		},
		{
			name:     "link",
			input:    "[repo](https://github.com/sandevgo/footix)",
			expected: "<a href=\"https://github.com/sandevgo/footix\">repo</a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToTelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarkdownToPlain(t *testing.T) {
	got := MarkdownToPlain([]byte("**Commands**\n\n`/help` List commands"))
	if strings.ContainsAny(got, "<>*`") {
		t.Errorf("expected plain text, got %q", got)
	}
	if !strings.Contains(got, "Commands") || !strings.Contains(got, "/help") {
		t.Errorf("text lost in %q", got)
	}
}

func TestSplitMessage(t *testing.T) {
	short := SplitMessage("hello", 10)
	if len(short) != 1 || short[0] != "hello" {
		t.Fatalf("unexpected split of short text: %q", short)
	}

	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
	chunks := SplitMessage(text, 10)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[0] != strings.Repeat("a", 8) || chunks[1] != strings.Repeat("b", 8) {
		t.Errorf("expected split at newline, got %q", chunks)
	}

	long := SplitMessage(strings.Repeat("x", 25), 10)
	if len(long) != 3 {
		t.Errorf("expected 3 chunks, got %d", len(long))
	}
	for _, c := range long {
		if len(c) > 10 {
			t.Errorf("chunk too long: %d", len(c))
		}
	}
}
