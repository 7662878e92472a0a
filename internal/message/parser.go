package message

import (
	"regexp"
	"strings"
)

// ParseError reports commit text that cannot be parsed at all.
// Malformed-but-present headers are not parse errors; they fall back to
// a subject-only message so header rules can still report on them.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse commit message: " + e.Reason
}

var (
	// headerPattern matches `type(scope)!: subject` with scope and the
	// breaking marker optional. A colon without a following space does
	// not count as a conventional header.
	headerPattern = regexp.MustCompile(`^(\w+)(?:\(([^()]*)\))?(!)?: (.*)$`)

	// trailerPattern matches git trailer lines, `Key: value` or
	// `Key #value`. BREAKING CHANGE is the single key allowed to
	// contain a space.
	trailerPattern = regexp.MustCompile(`^(?:BREAKING[ -]CHANGE|[A-Za-z][\w-]*)(?:: .*| #.*)$`)
)

// Parse splits raw commit text into header, body and footer segments and
// extracts type, scope and subject from a conventional header. It fails
// only when the input is empty or whitespace.
func Parse(raw string) (*CommitMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Reason: "message is empty"}
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	msg := &CommitMessage{
		Header:          lines[0],
		BodySeparated:   true,
		FooterSeparated: true,
	}

	if m := headerPattern.FindStringSubmatch(msg.Header); m != nil {
		msg.Type = m[1]
		msg.Scope = m[2]
		msg.Breaking = m[3] == "!"
		msg.Subject = m[4]
	} else {
		msg.Subject = msg.Header
	}

	rest := lines[1:]
	for len(rest) > 0 && strings.TrimSpace(rest[len(rest)-1]) == "" {
		rest = rest[:len(rest)-1]
	}
	if len(rest) == 0 {
		return msg, nil
	}

	// Exactly one blank line separates the header from what follows.
	separated := false
	if strings.TrimSpace(rest[0]) == "" {
		separated = true
		rest = rest[1:]
	}

	// A trailing run of trailer lines forms the footer, whether or not a
	// blank line precedes it; the footer-leading-blank rule decides what
	// to make of a missing separator.
	blockStart := len(rest)
	for blockStart > 0 {
		line := rest[blockStart-1]
		if strings.TrimSpace(line) == "" || !trailerPattern.MatchString(line) {
			break
		}
		blockStart--
	}

	switch {
	case blockStart == 0:
		msg.Footer = strings.Join(rest, "\n")
		msg.FooterSeparated = separated
	case blockStart < len(rest):
		msg.Footer = strings.Join(rest[blockStart:], "\n")
		msg.FooterSeparated = strings.TrimSpace(rest[blockStart-1]) == ""

		body := rest[:blockStart]
		for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
			body = body[:len(body)-1]
		}
		msg.Body = strings.Join(body, "\n")
		msg.BodySeparated = separated
	default:
		msg.Body = strings.Join(rest, "\n")
		msg.BodySeparated = separated
	}

	return msg, nil
}
