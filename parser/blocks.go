package parser

import (
	"regexp"
	"slices"
	"strings"
)

// block is a named brace-delimited declaration such as "type User { ... }"
// or "message User { ... }".
type block struct {
	keyword string
	name    string
	// body is the text between the braces with any nested brace groups removed
	body string
}

// scanBlocks finds every declaration whose header matches header and
// extracts its body. header must capture the keyword and the name as its
// first two groups and must end with the opening brace.
//
// Bodies are brace-balanced; nested groups (proto nested messages, rpc
// option blocks) are stripped from the body so that their contents are not
// attributed to the enclosing declaration. Nested declarations are still
// reported as blocks of their own. A nested group introduced by one of the
// inline keywords (proto oneof) is kept: its contents belong to the
// enclosing declaration and are spliced into the body on their own lines.
// An unterminated block is skipped.
func scanBlocks(src string, header *regexp.Regexp, inline ...string) []block {
	var blocks []block
	for _, loc := range header.FindAllStringSubmatchIndex(src, -1) {
		open := loc[1] - 1
		if open < 0 || src[open] != '{' {
			continue
		}
		end := matchingBrace(src, open)
		if end < 0 {
			continue
		}
		blocks = append(blocks, block{
			keyword: src[loc[2]:loc[3]],
			name:    src[loc[4]:loc[5]],
			body:    stripNested(src[open+1:end], inline...),
		})
	}
	return blocks
}

// matchingBrace returns the index of the '}' closing the '{' at open, or -1.
func matchingBrace(src string, open int) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripNested removes every top-level {...} group from body, except groups
// whose header starts with one of the inline keywords. Those are replaced by
// their own (recursively stripped) contents. An unbalanced group drops the
// rest of body.
func stripNested(body string, inline ...string) string {
	if !strings.ContainsRune(body, '{') {
		return body
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '{':
			end := matchingBrace(body, i)
			if end < 0 {
				return sb.String()
			}
			if slices.Contains(inline, groupKeyword(sb.String())) {
				sb.WriteByte('\n')
				sb.WriteString(stripNested(body[i+1:end], inline...))
				sb.WriteByte('\n')
			}
			i = end
		case '}':
			// unmatched closer, dropped
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// groupKeyword returns the first word of the statement that precedes a
// brace group, e.g. "oneof" for "...;\n  oneof contact ".
func groupKeyword(prefix string) string {
	if i := strings.LastIndexAny(prefix, ";\n}"); i >= 0 {
		prefix = prefix[i+1:]
	}
	fields := strings.Fields(prefix)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
