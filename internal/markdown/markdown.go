// Package markdown tokenizes Markdown source for validation.
//
// Two views are offered. ScanHeadings and ScanInlineLinks are line-oriented
// scanners that report positions exactly as an author sees them in the file,
// including malformed constructs CommonMark would not treat as links. The
// goldmark-backed ExtractLinks is used where a real AST view matters.
package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ExtractLinks parses a Markdown body and extracts link-like constructs.
//
// This is an analysis API; it does not attempt to re-render Markdown.
func ExtractLinks(body []byte, _ Options) ([]Link, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Goldmark resolves reference-style links to a Link node with a Destination.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	// Reference definitions are stored in the parse context (not represented as AST nodes).
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links, nil
}
