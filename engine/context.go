package engine

import "unicode/utf8"

// snippet extracts text surrounding a match: before bytes ahead of start
// and after bytes past end, clamped to the document and snapped to rune
// boundaries so a multi-byte character is never split.
func snippet(text string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(text) {
		hi = len(text)
	}

	for lo < len(text) && !utf8.RuneStart(text[lo]) {
		lo++
	}
	for hi > lo && hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi--
	}

	if lo > hi {
		return ""
	}
	return text[lo:hi]
}
