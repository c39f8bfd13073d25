package maya

import (
	"bufio"
	"io"
	"strings"
)

// Terminator ends every Maya ASCII command.
const Terminator = ";"

// Command is one logical statement: every physical line, newline included,
// up to and including the line holding the terminator.
type Command string

// CommandReader splits a Maya ASCII stream into commands. It holds at most one
// pushed back command, which Next returns before reading further.
type CommandReader struct {
	r       *bufio.Reader
	pending Command
	held    bool
	eof     bool
}

func NewCommandReader(r io.Reader) *CommandReader {
	return &CommandReader{r: bufio.NewReader(r)}
}

// Next returns the next command. A command left unterminated at the end of
// the stream is returned as is; io.EOF is returned once nothing is left.
func (cr *CommandReader) Next() (Command, error) {
	if cr.held {
		cr.held = false
		return cr.pending, nil
	}
	if cr.eof {
		return "", io.EOF
	}

	var b strings.Builder
	for {
		line, err := cr.r.ReadString('\n')
		b.WriteString(line)
		if err == io.EOF {
			cr.eof = true
			if b.Len() == 0 {
				return "", io.EOF
			}
			return Command(b.String()), nil
		}
		if err != nil {
			return "", err
		}
		if strings.Contains(line, Terminator) {
			return Command(b.String()), nil
		}
	}
}

// Unread pushes cmd back so the following Next returns it again.
// Only one command can be held; a second Unread before Next panics.
func (cr *CommandReader) Unread(cmd Command) {
	if cr.held {
		panic("maya: Unread called twice without Next")
	}
	cr.pending = cmd
	cr.held = true
}
