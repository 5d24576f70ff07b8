// Package otp assembles a one-time code from per-digit input slots.
//
// The slot model mirrors a row of single-character input boxes: typing a digit
// stores it and moves focus forward, deleting on an empty slot moves focus
// back, and a paste fills the slots left to right. Focus handling is returned
// to the caller as an index; the Code itself only guards the digits.
package otp

import "strings"

// Length is the number of digits in a one-time code.
const Length = 6

// Code is a fixed row of digit slots. The zero value is an empty code.
type Code struct {
	slots [Length]byte
}

// ParseCode builds a Code from a whole string, e.g. a line typed in a terminal.
// It reports false when s is not a run of digits.
func ParseCode(s string) (Code, bool) {
	var c Code
	_, ok := c.BulkFill(strings.TrimSpace(s))
	return c, ok
}

// SetDigit stores ch at slot i. An empty ch clears the slot. Anything other
// than a single ASCII digit is rejected and the slot is left alone.
// The returned focus is i+1 after storing a digit in any slot but the last.
func (c *Code) SetDigit(i int, ch string) (int, bool) {
	if i < 0 || i >= Length {
		return i, false
	}
	if ch == "" {
		c.slots[i] = 0
		return i, true
	}
	if !isDigit(ch) || len(ch) != 1 {
		return i, false
	}
	c.slots[i] = ch[0]
	if i < Length-1 {
		return i + 1, true
	}
	return i, true
}

// DeleteAt handles a delete gesture on slot i and returns the new focus.
// A filled slot is cleared in place; an empty slot moves focus to i-1.
func (c *Code) DeleteAt(i int) int {
	if i < 0 || i >= Length {
		return i
	}
	if c.slots[i] != 0 {
		c.slots[i] = 0
		return i
	}
	if i > 0 {
		return i - 1
	}
	return i
}

// BulkFill pastes text into the slots. Text is truncated to Length first and
// rejected as a whole if it contains a non-digit; slots past the pasted text
// keep their values. The returned focus is the slot after the last one
// filled, capped at the last slot.
func (c *Code) BulkFill(text string) (int, bool) {
	if len(text) > Length {
		text = text[:Length]
	}
	if text == "" || !isDigit(text) {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		c.slots[i] = text[i]
	}
	return min(len(text), Length-1), true
}

// Assembled concatenates the filled slots in order.
func (c *Code) Assembled() string {
	var b strings.Builder
	for _, d := range c.slots {
		if d != 0 {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// Complete reports whether all slots hold a digit.
func (c *Code) Complete() bool {
	return len(c.Assembled()) == Length
}

// Reset empties every slot.
func (c *Code) Reset() {
	c.slots = [Length]byte{}
}

// Valid reports whether s is exactly Length ASCII digits.
func Valid(s string) bool {
	return len(s) == Length && isDigit(s)
}

func isDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
