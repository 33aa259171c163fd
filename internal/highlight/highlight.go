// Package highlight splits source text into plain and matched segments for
// search-result rendering. Concatenating the segment texts in order always
// reproduces the source exactly.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// Apply scans source case-insensitively for every non-overlapping occurrence
// of query, left to right. Empty sources and empty or whitespace-only queries
// come back as a single plain segment.
func Apply(source, query string) []Segment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || source == "" {
		return []Segment{{Text: source}}
	}

	lower, offsets := foldOffsets(source)

	var segments []Segment
	pos := 0  // byte position in lower
	orig := 0 // byte position in source
	for pos < len(lower) {
		i := strings.Index(lower[pos:], q)
		if i == -1 {
			break
		}
		i += pos
		start, end := offsets[i], offsets[i+len(q)]
		if start > orig {
			segments = append(segments, Segment{Text: source[orig:start]})
		}
		segments = append(segments, Segment{Text: source[start:end], Match: true})
		pos = i + len(q)
		orig = end
	}
	if orig < len(source) {
		segments = append(segments, Segment{Text: source[orig:]})
	}
	return segments
}

// foldOffsets lowercases source rune by rune and records, for every byte of
// the lowered string, the source byte offset of the originating rune.
// Lowercasing can change a rune's encoded length, so byte positions in the
// lowered string cannot index source directly.
func foldOffsets(source string) (string, []int) {
	var b strings.Builder
	b.Grow(len(source))
	offsets := make([]int, 0, len(source)+1)
	for i, r := range source {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(source))
	return b.String(), offsets
}
