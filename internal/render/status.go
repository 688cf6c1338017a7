package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// StatusLine redraws a single terminal line in place.
type StatusLine struct {
	out io.Writer
	fd  int
	tty bool
}

func NewStatusLine(f *os.File) *StatusLine {
	fd := int(f.Fd())
	return &StatusLine{out: f, fd: fd, tty: term.IsTerminal(fd)}
}

func (s *StatusLine) Init() {
	if s.tty {
		io.WriteString(s.out, "\033[?25l") // Make the cursor invisible
	}
}

func (s *StatusLine) Deinit() {
	if s.tty {
		io.WriteString(s.out, "\r\n\033[?25h") // Make the cursor visible
	}
}

// Width is the terminal width in columns.
func (s *StatusLine) Width() int {
	if !s.tty {
		return defaultWidth
	}
	w, _, err := term.GetSize(s.fd)
	if nil != err || w <= 0 {
		return defaultWidth
	}
	return w
}

func (s *StatusLine) Draw(line string) error {
	_, err := io.WriteString(s.out, "\r"+line+"\033[K")
	return err
}

// Print writes full lines below the status line.
func (s *StatusLine) Print(text string) error {
	_, err := io.WriteString(s.out, "\r\033[K"+text+"\r\n")
	return err
}
