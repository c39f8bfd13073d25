package maya

import (
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// State is the step of the scan walk.
type State int

const (
	// SeekObject looks for the transform that owns the animation.
	SeekObject State = iota
	// SeekChannel looks for the next animation curve node.
	SeekChannel
	// SeekKeyframes looks for the keyframe array inside the current curve block.
	SeekKeyframes
)

func (s State) String() string {
	switch s {
	case SeekObject:
		return "seek-object"
	case SeekChannel:
		return "seek-channel"
	case SeekKeyframes:
		return "seek-keyframes"
	default:
		return "unknown"
	}
}

const anyNodeKind = `[a-zA-Z0-9]+`

var (
	transformNodeRegExp = nodeRegExp("transform")
	anyNodeRegExp       = nodeRegExp(anyNodeKind)

	// Commands that belong to a node block are tab indented.
	subCommandRegExp = regexp.MustCompile(`^\t\w`)
	ktvCmdRegExp     = regexp.MustCompile(`^\tsetAttr (?:-s \d{1,4} )?"\.ktv\[\d{1,4}(?::\d{1,4})?\]"\s+`)
	whitespaceRegExp = regexp.MustCompile(`\s+`)
)

func nodeRegExp(kind string) *regexp.Regexp {
	return regexp.MustCompile(`^createNode ` + kind + ` -n "([^"]*)"`)
}

// Scanner walks the commands of one scene and fills a Locator.
type Scanner struct {
	reader  *CommandReader
	state   State
	channel Channel
	result  *Locator
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: NewCommandReader(r),
		state:  SeekObject,
		result: &Locator{Channels: Buffer{}},
	}
}

// Scan extracts the first transform's name and the raw keyframe string of
// every recognized channel from a Maya ASCII stream. A scene without a
// transform yields an empty Locator, not an error.
func Scan(r io.Reader) (*Locator, error) {
	return NewScanner(r).Run()
}

// Run consumes the whole stream.
func (s *Scanner) Run() (*Locator, error) {
	for {
		cmd, err := s.reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read maya command")
		}
		s.step(cmd)
	}
	return s.result, nil
}

// State returns the current step of the walk.
func (s *Scanner) State() State {
	return s.state
}

func (s *Scanner) step(cmd Command) {
	switch s.state {
	case SeekObject:
		name, ok := NodeName(cmd, transformNodeRegExp)
		if !ok {
			return
		}
		s.result.Object = name
		s.state = SeekChannel
		logrus.Debugf("found transform %q", name)

	case SeekChannel:
		name, ok := NodeName(cmd, anyNodeRegExp)
		if !ok {
			return
		}
		ident := name[strings.LastIndex(name, "_")+1:]
		channel, ok := ParseChannel(ident)
		if !ok {
			logrus.Debugf("skipping node %q", name)
			return
		}
		s.channel = channel
		s.state = SeekKeyframes

	case SeekKeyframes:
		if !subCommandRegExp.MatchString(string(cmd)) {
			// The curve block ended without keys; cmd opens the next block.
			s.reader.Unread(cmd)
			s.state = SeekChannel
			return
		}
		values, ok := KeyValues(cmd)
		if !ok {
			return
		}
		if _, dup := s.result.Channels[s.channel]; dup {
			logrus.Debugf("channel %s declared again, keeping the last block", s.channel)
		}
		s.result.Channels[s.channel] = values
		s.state = SeekChannel
	}
}

// NodeName returns the name argument of a createNode command matching re.
func NodeName(cmd Command, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(string(cmd))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// KeyValues returns the keyframe time-value list of a ".ktv" setAttr command
// with its whitespace collapsed to single spaces.
func KeyValues(cmd Command) (string, bool) {
	text := string(cmd)
	loc := ktvCmdRegExp.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	text = strings.TrimRightFunc(text[loc[1]:], unicode.IsSpace)
	text = strings.TrimSuffix(text, Terminator)
	text = whitespaceRegExp.ReplaceAllString(text, " ")
	return strings.TrimSpace(text), true
}
