package list

import (
	"strconv"
	"strings"
)

// Default render text.
const (
	DefaultSeparator  = " -> "
	DefaultTerminator = "NULL"
	DefaultEmptyText  = "List is empty."
)

// RenderOptions controls the text produced by RenderWith.
type RenderOptions struct {
	Separator  string // Written after every value
	Terminator string // Written once after the last separator
	EmptyText  string // Written instead when the list has no elements
}

// DefaultRenderOptions returns the arrow form used by Render.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Separator:  DefaultSeparator,
		Terminator: DefaultTerminator,
		EmptyText:  DefaultEmptyText,
	}
}

// Render returns the list in arrow form, e.g. "1 -> 2 -> NULL".
func (l *List) Render() string {
	return l.RenderWith(DefaultRenderOptions())
}

// RenderWith returns the list rendered with opts. Separator and Terminator
// are used as given, so "" joins values directly; start from
// DefaultRenderOptions to change a single field. An empty EmptyText falls
// back to DefaultEmptyText so an empty list never renders as "".
func (l *List) RenderWith(opts RenderOptions) string {
	if l.IsEmpty() {
		if opts.EmptyText == "" {
			return DefaultEmptyText
		}
		return opts.EmptyText
	}

	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		sb.WriteString(strconv.Itoa(n.value))
		sb.WriteString(opts.Separator)
	}
	sb.WriteString(opts.Terminator)
	return sb.String()
}
