package cssgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ValidationError points at the first structural problem in a stylesheet.
type ValidationError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// block is an open "{" and whether anything but whitespace followed it.
type block struct {
	offset  int
	content bool
}

// Validate checks that braces balance and that no block is empty. It is not
// a general CSS validator.
func Validate(content string) error {
	lexer := css.NewLexer(parse.NewInputString(content))

	var stack []*block
	offset := 0

	fail := func(at int, msg string) error {
		line, col := position(content, at)
		return &ValidationError{Line: line, Column: col, Msg: msg}
	}

	for {
		tt, text := lexer.Next()
		start := offset
		offset += len(text)

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fail(start, err.Error())
			}
			if len(stack) > 0 {
				return fail(stack[len(stack)-1].offset, "unclosed block")
			}
			return nil

		case css.WhitespaceToken, css.CommentToken, css.SemicolonToken:

		case css.LeftBraceToken:
			if len(stack) > 0 {
				stack[len(stack)-1].content = true
			}
			stack = append(stack, &block{offset: start})

		case css.RightBraceToken:
			if len(stack) == 0 {
				return fail(start, "unexpected '}'")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !top.content {
				return fail(top.offset, "empty rule body")
			}

		default:
			if len(stack) > 0 {
				stack[len(stack)-1].content = true
			}
		}
	}
}

// position converts a byte offset to a 1-based line and column.
func position(content string, offset int) (int, int) {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}
