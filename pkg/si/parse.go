package si

import (
	"strconv"
	"strings"
)

// Parse parses the textual form String renders: "<bits>stride[0xlb,
// 0xub]R?" with an optional trailing " (uninit)", or "<bits>[EmptySI]" for
// BOTTOM. It is the inverse of (*SI).String for every value String can
// produce.
func Parse(text string) (*SI, error) {
	s := text
	uninit := false
	if strings.HasSuffix(s, " (uninit)") {
		uninit = true
		s = strings.TrimSuffix(s, " (uninit)")
	}
	if !strings.HasPrefix(s, "<") {
		return nil, wrapf(ErrParse, "parse %q: missing leading '<'", text)
	}
	closeAngle := strings.Index(s, ">")
	if closeAngle < 0 {
		return nil, wrapf(ErrParse, "parse %q: missing '>'", text)
	}
	bits, err := strconv.Atoi(s[1:closeAngle])
	if err != nil || bits < 1 {
		return nil, wrapf(ErrInvalidWidth, "parse %q: bad width", text)
	}
	rest := s[closeAngle+1:]

	if strings.HasPrefix(rest, "[EmptySI]") {
		e := Empty(bits)
		e.uninit = uninit
		return e, nil
	}

	openBracket := strings.Index(rest, "[")
	if openBracket < 0 {
		return nil, wrapf(ErrParse, "parse %q: missing '['", text)
	}
	stride, err := strconv.ParseUint(rest[:openBracket], 10, 64)
	if err != nil {
		return nil, wrapf(ErrParse, "parse %q: bad stride", text)
	}
	rest = rest[openBracket+1:]

	comma := strings.Index(rest, ",")
	if comma < 0 {
		return nil, wrapf(ErrParse, "parse %q: missing ','", text)
	}
	lb, err := parseHex(rest[:comma])
	if err != nil {
		return nil, wrapf(ErrParse, "parse %q: bad lower bound", text)
	}
	rest = rest[comma+1:]

	closeBracket := strings.Index(rest, "]")
	if closeBracket < 0 {
		return nil, wrapf(ErrParse, "parse %q: missing ']'", text)
	}
	ub, err := parseHex(rest[:closeBracket])
	if err != nil {
		return nil, wrapf(ErrParse, "parse %q: bad upper bound", text)
	}
	tail := rest[closeBracket+1:]
	reversed := tail == "R"
	if tail != "" && !reversed {
		return nil, wrapf(ErrParse, "parse %q: unexpected trailing %q", text, tail)
	}

	r := New(bits, WithStride(stride), WithBounds(lb, ub), WithReversed(reversed), WithUninit(uninit))
	return r, nil
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 64)
}
