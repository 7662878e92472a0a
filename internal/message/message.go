// Package message parses raw commit text into its conventional segments.
package message

// CommitMessage is the structured form of a single commit message.
// It is built once by Parse and never mutated afterwards.
type CommitMessage struct {
	// Header is the first line of the message, verbatim.
	Header string
	// Type, Scope and Subject are extracted when the header matches the
	// `type(scope): subject` shape. When it does not, Type and Scope are
	// empty and the whole header is carried as the Subject.
	Type    string
	Scope   string
	Subject string
	// Breaking reports a `!` marker before the header colon.
	Breaking bool
	// Body is the free-form text between header and footer, trimmed of
	// trailing blank lines.
	Body string
	// Footer holds the trailing trailer block (`Key: value` / `Key #value`
	// lines), or is empty when no such block exists.
	Footer string

	// BodySeparated and FooterSeparated report whether a blank line
	// preceded the body and footer respectively. They are vacuously true
	// when the segment is absent.
	BodySeparated   bool
	FooterSeparated bool
}
