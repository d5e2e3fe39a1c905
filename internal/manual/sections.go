package manual

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/manualgen/internal/markdown"
)

// DefaultRequiredSections are the level-2 sections every user manual must contain.
var DefaultRequiredSections = []string{
	"Overview",
	"Device Setup",
	"Feature Guide",
	"Troubleshooting",
	"Safety Guidelines",
}

// SectionPresence records whether one required section was found.
type SectionPresence struct {
	Name    string
	Present bool
}

// SectionStructure is the ordered presence list for the required sections.
// It serializes as a JSON object whose keys keep the required order.
type SectionStructure []SectionPresence

// ValidateStructure reports, for each required section in order, whether the
// content contains a level-2 header whose text equals the name exactly.
// Matching is case-sensitive; both sides are NFC-normalized first so that
// composed and decomposed accents compare equal.
func ValidateStructure(content string, required []string) SectionStructure {
	found := make(map[string]bool)
	for _, h := range markdown.ScanHeadings(content) {
		if h.Level == 2 && h.Spaced {
			found[norm.NFC.String(h.Text)] = true
		}
	}

	out := make(SectionStructure, 0, len(required))
	for _, name := range required {
		out = append(out, SectionPresence{
			Name:    name,
			Present: found[norm.NFC.String(name)],
		})
	}
	return out
}

// Missing returns the names of absent sections in required order.
func (s SectionStructure) Missing() []string {
	missing := make([]string, 0)
	for _, p := range s {
		if !p.Present {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// AllPresent reports whether no required section is missing.
func (s SectionStructure) AllPresent() bool {
	for _, p := range s {
		if !p.Present {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the structure as {"Section": true, ...} in required order.
func (s SectionStructure) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := []byte{'{'}
	for i, p := range s {
		if i > 0 {
			out = append(out, ',')
		}
		buf.Reset()
		if err := enc.Encode(p.Name); err != nil {
			return nil, err
		}
		out = append(out, bytes.TrimRight(buf.Bytes(), "\n")...)
		out = append(out, ':')
		if p.Present {
			out = append(out, "true"...)
		} else {
			out = append(out, "false"...)
		}
	}
	return append(out, '}'), nil
}

// UnmarshalJSON decodes an object of section flags, keeping key order.
func (s *SectionStructure) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("section structure: expected object, got %v", tok)
	}

	out := SectionStructure{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("section structure: unexpected key %v", keyTok)
		}
		var present bool
		if err := dec.Decode(&present); err != nil {
			return fmt.Errorf("section structure: %s: %w", name, err)
		}
		out = append(out, SectionPresence{Name: name, Present: present})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}
