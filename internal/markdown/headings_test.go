package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanHeadings(t *testing.T) {
	src := "# Manual\r\n\nIntro text\n## Overview  \n###Compact\n  ## indented is not a header\n####\ttabbed\n"

	got := ScanHeadings(src)
	require.Equal(t, []Heading{
		{Level: 1, Text: "Manual", Line: 1, Spaced: true},
		{Level: 2, Text: "Overview", Line: 4, Spaced: true},
		{Level: 3, Text: "Compact", Line: 5, Spaced: false},
		{Level: 4, Text: "tabbed", Line: 7, Spaced: true},
	}, got)
}

func TestScanHeadings_SkipsFencedCode(t *testing.T) {
	src := "# Title\n```bash\n# a shell comment\n~~~\n```\n## Real"

	got := ScanHeadings(src)
	require.Len(t, got, 2)
	assert.Equal(t, "Title", got[0].Text)
	assert.Equal(t, "Real", got[1].Text)
	assert.Equal(t, 6, got[1].Line)
}

func TestScanHeadings_BareHashes(t *testing.T) {
	got := ScanHeadings("##\n")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Level)
	assert.Empty(t, got[0].Text)
	assert.False(t, got[0].Spaced)
}

func TestScanHeadings_Empty(t *testing.T) {
	assert.Empty(t, ScanHeadings(""))
}

func TestScanHeadings_OneLineCodeSpanIsNotAFence(t *testing.T) {
	got := ScanHeadings("# Manual\n```reset```\n## Overview\n### Pairing\n")
	require.Len(t, got, 3)
	assert.Equal(t, "Overview", got[1].Text)
	assert.Equal(t, 3, got[1].Line)
}

func TestScanHeadings_FenceClosing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "shorter run does not close",
			src:  "````\n```\n# hidden\n````\n# Shown",
			want: []string{"Shown"},
		},
		{
			name: "other fence character does not close",
			src:  "~~~\n```\n# hidden\n~~~\n# Shown",
			want: []string{"Shown"},
		},
		{
			name: "run with trailing text does not close",
			src:  "```\n``` not a close\n# hidden\n```\n# Shown",
			want: []string{"Shown"},
		},
		{
			name: "tilde opener may carry backticks in info",
			src:  "~~~ `lang`\n# hidden\n~~~\n# Shown",
			want: []string{"Shown"},
		},
		{
			name: "two backticks are not a fence",
			src:  "``\n# Shown",
			want: []string{"Shown"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var texts []string
			for _, h := range ScanHeadings(tt.src) {
				texts = append(texts, h.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}
