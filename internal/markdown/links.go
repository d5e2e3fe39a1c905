package markdown

// Options controls how Markdown is parsed for analysis.
type Options struct{}

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// LinkCounts summarizes ExtractLinks output for template statistics.
type LinkCounts struct {
	Links  int
	Images int
}

// CountLinks parses body and counts navigable links and images.
// Reference definitions are not counted; their usages already are.
func CountLinks(body []byte) (LinkCounts, error) {
	var counts LinkCounts
	links, err := ExtractLinks(body, Options{})
	if err != nil {
		return counts, err
	}
	for _, l := range links {
		switch l.Kind {
		case LinkKindImage:
			counts.Images++
		case LinkKindInline, LinkKindAuto:
			counts.Links++
		}
	}
	return counts, nil
}
