package build

import (
	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
)

// The base code has no separators: each slot is either the single
// character '-' (empty) or an exactly two character module id. The
// tokenizer is the one place that knows this width rule, so the
// peek-one-character ambiguity stays contained here.

// slotToken is one decoded slot position
type slotToken struct {
	Empty bool
	ID    string
}

type tokenCursor struct {
	code string // full code, for error reporting
	s    string
	pos  int
}

func newTokenCursor(code, slots string) *tokenCursor {
	return &tokenCursor{code: code, s: slots}
}

// next consumes one slot token: one character for an empty marker,
// exactly two for a module id
func (c *tokenCursor) next() (slotToken, error) {
	if c.pos >= len(c.s) {
		return slotToken{}, shared.NewDecodeError(c.code, "build code too short: ran out of slot tokens")
	}
	if c.s[c.pos] == '-' {
		c.pos++
		return slotToken{Empty: true}, nil
	}
	if c.pos+2 > len(c.s) {
		return slotToken{}, shared.NewDecodeError(c.code, "build code truncated inside a module id")
	}
	token := slotToken{ID: c.s[c.pos : c.pos+2]}
	c.pos += 2
	return token, nil
}

// done reports whether every character was consumed
func (c *tokenCursor) done() bool {
	return c.pos == len(c.s)
}
