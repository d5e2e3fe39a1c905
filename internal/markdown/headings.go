package markdown

import "strings"

// Heading is one ATX-style header line.
type Heading struct {
	Level  int    // number of leading '#'
	Text   string // remainder of the line, trimmed
	Line   int    // 1-based line number
	Spaced bool   // the '#' run is followed by whitespace
}

// ScanHeadings returns every line that starts with '#', in document order.
// Lines inside fenced code blocks are skipped.
func ScanHeadings(content string) []Heading {
	var headings []Heading
	fence := fenceTracker{}

	for i, line := range splitLines(content) {
		if fence.skip(line) {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			continue
		}

		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		rest := line[level:]
		headings = append(headings, Heading{
			Level:  level,
			Text:   strings.TrimSpace(rest),
			Line:   i + 1,
			Spaced: rest != "" && (rest[0] == ' ' || rest[0] == '\t'),
		})
	}

	return headings
}

// splitLines splits on '\n' and drops a trailing '\r' from each line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// fenceTracker follows ``` and ~~~ fenced code blocks line by line.
type fenceTracker struct {
	char byte // fence character of the open block, 0 when outside
	size int  // length of the opening run
}

// skip reports whether line is a fence delimiter or inside a fenced block.
// An opener is a run of at least three backticks or tildes; a backtick
// opener whose remainder contains a backtick is inline code, not a fence.
// A block closes on a bare run of the same character at least as long.
func (f *fenceTracker) skip(line string) bool {
	trimmed := strings.TrimSpace(line)
	if f.char != 0 {
		if n := fenceRun(trimmed); n >= f.size && trimmed[0] == f.char && strings.TrimSpace(trimmed[n:]) == "" {
			f.char, f.size = 0, 0
		}
		return true
	}

	n := fenceRun(trimmed)
	if n < 3 {
		return false
	}
	if trimmed[0] == '`' && strings.Contains(trimmed[n:], "`") {
		return false
	}
	f.char, f.size = trimmed[0], n
	return true
}

// fenceRun returns the length of the leading run of '`' or '~' in s.
func fenceRun(s string) int {
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return 0
	}
	n := 1
	for n < len(s) && s[n] == s[0] {
		n++
	}
	return n
}
