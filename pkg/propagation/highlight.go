package propagation

import (
	"sort"
	"strings"
)

// Fragment is one run of a rendered section text. Concatenating the Text
// fields of all fragments reproduces the input exactly.
type Fragment struct {
	Text  string `json:"text"`
	Color Color  `json:"color"`
}

// Fragments decomposes a section's current text into colored and uncolored
// runs based on the highlights registered for (stage, section).
//
// Matching is longest-first at every scan position so a short registered
// fragment cannot pre-empt a longer overlapping one. Registered strings that
// no longer occur in the text (edited away by the user) are skipped silently.
func (s *State) Fragments(stage Stage, section, text string) []Fragment {
	items := s.SectionHighlights(stage, section)
	if len(items) == 0 {
		return []Fragment{{Text: text, Color: ColorNone}}
	}
	gen := s.Generation()

	sorted := make([]HighlightedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) > len(sorted[j].Text)
	})

	var fragments []Fragment
	currentIndex := 0

	for currentIndex < len(text) {
		matched := false
		for _, item := range sorted {
			if item.Text == "" {
				continue
			}
			if strings.HasPrefix(text[currentIndex:], item.Text) {
				// Color from the matched item itself, not a fuzzy re-lookup:
				// an older shorter item contained in this one must not win.
				fragments = append(fragments, Fragment{
					Text:  item.Text,
					Color: colorForDiff(gen - item.Generation),
				})
				currentIndex += len(item.Text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// No item starts here; emit the uncolored span up to the nearest
		// upcoming match (or the end of the text).
		next := len(text)
		for _, item := range sorted {
			if item.Text == "" {
				continue
			}
			if idx := strings.Index(text[currentIndex:], item.Text); idx >= 0 && currentIndex+idx < next {
				next = currentIndex + idx
			}
		}
		fragments = append(fragments, Fragment{
			Text:  text[currentIndex:next],
			Color: ColorNone,
		})
		currentIndex = next
	}

	if len(fragments) == 0 {
		return []Fragment{{Text: text, Color: ColorNone}}
	}
	return fragments
}
