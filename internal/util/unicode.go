package util

import "unicode/utf8"

// IsCJK reports whether r is a Han ideograph (U+4E00–U+9FFF), Hiragana
// (U+3040–U+309F) or Katakana (U+30A0–U+30FF).
func IsCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF)
}

// RuneLength returns the display length of a single rune.
func RuneLength(r rune, countCJKAsTwo bool) int {
	if countCJKAsTwo && IsCJK(r) {
		return 2
	}
	return 1
}

// DisplayLength returns the display length of text: one per rune, or two per
// CJK rune when countCJKAsTwo is set.
func DisplayLength(text string, countCJKAsTwo bool) int {
	if !countCJKAsTwo {
		return utf8.RuneCountInString(text)
	}
	n := 0
	for _, r := range text {
		n += RuneLength(r, true)
	}
	return n
}
