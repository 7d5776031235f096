package parser

import "strings"

// LineNormalizer strips comments from physical lines. It carries the
// "inside block comment" flag from one line to the next, so one normalizer
// must be used per document and fed lines in order.
type LineNormalizer struct {
	inBlockComment bool
}

// NewLineNormalizer creates a normalizer positioned outside any comment
func NewLineNormalizer() *LineNormalizer {
	return &LineNormalizer{}
}

// Normalize returns the code left on raw once comments are removed. The
// second result is false when nothing but comments or whitespace remains.
func (n *LineNormalizer) Normalize(raw string) (string, bool) {
	var code strings.Builder
	rest := raw

	for rest != "" {
		if n.inBlockComment {
			end := strings.Index(rest, "*/")
			if end == -1 {
				break
			}
			n.inBlockComment = false
			rest = rest[end+len("*/"):]
			continue
		}

		lineComment := strings.Index(rest, "//")
		blockComment := strings.Index(rest, "/*")

		if lineComment != -1 && (blockComment == -1 || lineComment < blockComment) {
			code.WriteString(rest[:lineComment])
			break
		}
		if blockComment == -1 {
			code.WriteString(rest)
			break
		}

		code.WriteString(rest[:blockComment])
		code.WriteByte(' ')
		n.inBlockComment = true
		rest = rest[blockComment+len("/*"):]
	}

	line := strings.TrimSpace(code.String())
	return line, line != ""
}

// InBlockComment reports whether the last line left a block comment open
func (n *LineNormalizer) InBlockComment() bool {
	return n.inBlockComment
}
