package input

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrDecode   = errors.New("line is not valid utf-8")
	ErrNoColon  = errors.New("missing colon")
	ErrBadValue = errors.New("value is not a number")
)

const (
	button1Marker = "Button 1:"
	button2Marker = "Button 2:"
)

// Reading is one state report from the device, e.g. "Button 2: 1".
type Reading struct {
	Button int // 1 or 2
	Value  int
}

// Pressed reports whether the button is held down.
func (r Reading) Pressed() bool {
	return r.Value == 1
}

// DecodeLine turns raw device bytes into a trimmed text line.
func DecodeLine(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %q", ErrDecode, raw)
	}
	return string(bytes.TrimSpace(raw)), nil
}

// ParseLine parses a "Button N: value" line. The value is read as a float
// and truncated. ok is false for lines that mention neither button, which
// the board also prints (banners, debug output).
func ParseLine(line string) (r Reading, ok bool, err error) {
	switch {
	case strings.Contains(line, button1Marker):
		r.Button = 1
	case strings.Contains(line, button2Marker):
		r.Button = 2
	default:
		return Reading{}, false, nil
	}

	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return Reading{}, false, fmt.Errorf("parse %q: %w", line, ErrNoColon)
	}
	raw := strings.TrimSpace(parts[1])
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return Reading{}, false, fmt.Errorf("parse %q: %w", line, ErrBadValue)
	}
	r.Value = int(math.Trunc(f))
	return r, true, nil
}
