// Package code - slot-code token type and decoding.
//
// Design:
//   - Decoding is positional: no separators, no escaping, no allocation
//     beyond the returned substrings (which share the token's backing).
//   - Total over arbitrary strings: missing positions decode to zero
//     values, flags to NoFlag. No panics, no errors.
//   - Deterministic: same token ⇒ identical fields on every call.
//
// Complexity: every operation here is O(1).
package code

// Field widths of the positional token format.
const (
	// CategoryLen is the width of the top-level category prefix.
	CategoryLen = 2

	// SubKeyLen is the width of the full subcategory key
	// (category prefix + subcategory suffix).
	SubKeyLen = 4
)

// Placement flags carried inside a token. Any other byte in a flag
// position means the corresponding group is unconstrained.
const (
	// FlagSpread marks a category for even spread: with count c in a
	// packet of size n, at most one occurrence per window of width n/c.
	FlagSpread = 'A'

	// FlagSplit marks a category for a half split: at most ceil(c/2)
	// occurrences in each half of the packet.
	FlagSplit = 'B'

	// SubFlagSpread is the subcategory analogue of FlagSpread.
	SubFlagSpread = 'a'

	// SubFlagSplit is the subcategory analogue of FlagSplit.
	SubFlagSplit = 'b'

	// NoFlag is returned for tokens too short to carry a flag.
	NoFlag = byte(0)
)

// Code is one slot's token. Equality is exact string equality; a Code is
// never normalized or mutated after creation.
type Code string

// Fields is the decoded view of a Code.
type Fields struct {
	// Category is the 2-char top-level prefix ("" when the token is shorter).
	Category string

	// CategoryFlag is Category's second byte (NoFlag when absent).
	CategoryFlag byte

	// SubKey is the 4-char subcategory key ("" when the token is shorter).
	SubKey string

	// SubFlag is SubKey's fourth byte (NoFlag when absent).
	SubFlag byte
}

// Decode splits c into its positional fields. Total: any string is
// accepted, short tokens yield empty fields and NoFlag flags.
func (c Code) Decode() Fields {
	var f Fields
	if len(c) >= CategoryLen {
		f.Category = string(c[:CategoryLen])
		f.CategoryFlag = c[CategoryLen-1]
	}
	if len(c) >= SubKeyLen {
		f.SubKey = string(c[:SubKeyLen])
		f.SubFlag = c[SubKeyLen-1]
	}

	return f
}

// Category returns the 2-char top-level prefix, or "" for short tokens.
func (c Code) Category() string {
	if len(c) < CategoryLen {
		return ""
	}

	return string(c[:CategoryLen])
}

// CategoryFlag returns the category flag byte, or NoFlag for short tokens.
func (c Code) CategoryFlag() byte {
	if len(c) < CategoryLen {
		return NoFlag
	}

	return c[CategoryLen-1]
}

// SubKey returns the 4-char subcategory key, or "" for short tokens.
func (c Code) SubKey() string {
	if len(c) < SubKeyLen {
		return ""
	}

	return string(c[:SubKeyLen])
}

// SubFlag returns the subcategory flag byte, or NoFlag for short tokens.
func (c Code) SubFlag() byte {
	if len(c) < SubKeyLen {
		return NoFlag
	}

	return c[SubKeyLen-1]
}

// MatchesPrefix reports whether c's first n bytes equal prefix.
// A token shorter than n never matches; an empty prefix never matches
// (it would otherwise count every element of a window).
func (c Code) MatchesPrefix(prefix string, n int) bool {
	if n <= 0 || len(prefix) < n || len(c) < n {
		return false
	}

	return string(c[:n]) == prefix[:n]
}
