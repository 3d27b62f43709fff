package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context stores information derived from a range in some text. It is used
// for errors that point to a part of an expression.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Position returns the 1-based line and column number of the start of the
// range. The column is counted in codepoints.
func (c *Context) Position() (line, col int) {
	before := c.Source[:c.From]
	return strings.Count(before, "\n") + 1,
		utf8.RuneCountInString(lastLine(before)) + 1
}

// Show shows the context, prefixed by its name and starting position. Lines
// of a multi-line culprit after the first one are indented with indent, plus
// enough spaces to line up with the first line.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.describeStart() + ": "
	descIndent := strings.Repeat(" ", utf8.RuneCountInString(desc))
	return desc + c.relevantSource(indent+descIndent)
}

func (c *Context) describeStart() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	line, col := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) relevantSource(indent string) string {
	head := lastLine(c.Source[:c.From])
	culprit := c.Source[c.From:c.To]
	var tail string
	// A trailing newline in the culprit is not shown; otherwise the rest of
	// the last line is.
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(c.Source[c.To:])
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(head)
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		sb.WriteString(culpritStart + line + culpritEnd)
	}
	sb.WriteString(tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
