// Package commitmsg splits raw commit text into its shortlog and body.
package commitmsg

import "strings"

// Message is the parsed form of a raw commit message. All fields are
// derived once at parse time and never mutated.
type Message struct {
	// Shortlog is the first line of the message.
	Shortlog string

	// Body is everything after the blank line following the shortlog,
	// empty when the message has no body.
	Body string

	// HasBody reports whether any content follows the shortlog line.
	HasBody bool

	// HasSeparator reports whether a blank line directly follows the
	// shortlog. Only meaningful when HasBody is true.
	HasSeparator bool
}

// Parse derives the shortlog and body from raw commit text. Git appends a
// trailing newline to `git log --pretty=%B` output, so trailing newlines
// never count as body content. CRLF line endings are normalized first.
func Parse(raw string) Message {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimRight(raw, "\n")

	lines := strings.Split(raw, "\n")
	msg := Message{Shortlog: lines[0]}
	if len(lines) == 1 {
		return msg
	}

	msg.HasBody = true
	if strings.TrimSpace(lines[1]) != "" {
		// Body starts directly under the shortlog with no separator.
		return msg
	}

	msg.HasSeparator = true
	msg.Body = strings.Join(lines[2:], "\n")
	return msg
}

// BodyLines returns the body split into individual lines, or nil when the
// body is empty.
func (m Message) BodyLines() []string {
	if m.Body == "" {
		return nil
	}
	return strings.Split(m.Body, "\n")
}
