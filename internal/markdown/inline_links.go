package markdown

import "strings"

// InlineLink is a `[text](destination)` occurrence found by ScanInlineLinks.
type InlineLink struct {
	Text        string
	Destination string
	Line        int
	Image       bool
}

// ScanInlineLinks finds inline links and images. Unlike a CommonMark parser
// it keeps links whose destination is empty or blank, which is exactly what
// callers use it to detect. Link text and destination may continue across
// line breaks. Code spans and fenced code blocks are ignored; Line is where
// the opening bracket sits.
func ScanInlineLinks(content string) []InlineLink {
	lines := splitLines(content)
	fence := fenceTracker{}
	for i, line := range lines {
		if fence.skip(line) {
			lines[i] = ""
			continue
		}
		lines[i] = stripInlineCodeSpans(line)
	}
	return scanText(strings.Join(lines, "\n"))
}

func scanText(text string) []InlineLink {
	var links []InlineLink
	line := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			line++
			continue
		}
		if text[i] != '[' {
			continue
		}
		closeRel := strings.IndexByte(text[i+1:], ']')
		if closeRel <= 0 {
			continue
		}
		closeBracket := i + 1 + closeRel
		if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
			continue
		}
		endRel := strings.IndexByte(text[closeBracket+2:], ')')
		if endRel == -1 {
			continue
		}
		end := closeBracket + 2 + endRel
		links = append(links, InlineLink{
			Text:        text[i+1 : closeBracket],
			Destination: text[closeBracket+2 : end],
			Line:        line,
			Image:       i > 0 && text[i-1] == '!',
		})
		line += strings.Count(text[i:end], "\n")
		i = end
	}
	return links
}

func stripInlineCodeSpans(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '`' {
			out.WriteByte(s[i])
			i++
			continue
		}

		run := 1
		for i+run < len(s) && s[i+run] == '`' {
			run++
		}

		marker := strings.Repeat("`", run)
		closeRel := strings.Index(s[i+run:], marker)
		if closeRel == -1 {
			// Unclosed code span; keep the backticks and continue.
			out.WriteString(marker)
			i += run
			continue
		}

		// Skip the entire code span, including delimiters.
		i = i + run + closeRel + run
	}

	return out.String()
}
