package inputs

import (
	"fmt"
	"io"
	"os"

	"github.com/jeduden/proselens/internal/mdtext"
)

// Passage is the text of one input along with where it came from.
type Passage struct {
	// Path is empty for stdin.
	Path string
	Text string
}

// Name returns Path, or "<stdin>" for standard input.
func (p Passage) Name() string {
	if p.Path == "" {
		return "<stdin>"
	}
	return p.Path
}

// ReadFile reads a passage from disk. Markdown files are reduced to the
// plain text of their headings and paragraphs.
func ReadFile(path string) (Passage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Passage{}, fmt.Errorf("reading %q: %w", path, err)
	}
	return Passage{Path: path, Text: decode(path, data)}, nil
}

// ReadStdin reads a whole passage from r. When markdown is true the input
// is reduced to plain text first.
func ReadStdin(r io.Reader, markdown bool) (Passage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Passage{}, fmt.Errorf("reading stdin: %w", err)
	}
	if markdown {
		return Passage{Text: mdtext.PlainText(data)}, nil
	}
	return Passage{Text: string(data)}, nil
}

func decode(path string, data []byte) string {
	if isMarkdown(path) {
		return mdtext.PlainText(data)
	}
	return string(data)
}
