package parse

import (
	"sort"
	"strings"
)

// ParseContinuousInput parses the full live transcript into ordered line
// items. It is the entry point the capture layer calls on every transcript
// update: each call is a complete, deterministic re-parse of exactly the
// text it is given.
//
// Segmentation strategy, fixed and never blended:
//
//   - Primary: every price expression found anywhere in the transcript
//     closes a segment at its end. Closed segments are kept only when they
//     produced a name or a quantity.
//   - Secondary (only when zero price expressions exist): every known item
//     name starts a new accumulating segment, longest names matched first;
//     text before the first name is treated as the first segment's lead-in.
//
// Whichever path ran, trailing text after the last boundary is parsed and
// appended as the final, live item with no completeness requirement: it is
// whatever the speaker is saying right now, and callers must check field
// presence on it rather than rely on the noise filter.
func (p *Parser) ParseContinuousInput(transcript string) []Item {
	items := []Item{}

	// Normalize spoken numbers over the whole transcript first so the
	// boundary patterns see digits, not number words.
	normalized := p.normalizeNumbers(strings.ToLower(transcript))
	if strings.TrimSpace(normalized) == "" {
		return items
	}

	if ends := p.priceBoundaries(normalized); len(ends) > 0 {
		prev := 0
		for _, e := range ends {
			it := p.ParseSegment(normalized[prev:e])
			if it.Name != "" || it.Quantity != "" {
				items = append(items, it)
			}
			prev = e
		}
		if tail := strings.TrimSpace(normalized[prev:]); tail != "" {
			items = append(items, p.ParseSegment(tail))
		}
		return items
	}

	starts := p.nameStarts(normalized)
	if len(starts) == 0 {
		// Nothing recognizable anywhere: the entire transcript is the
		// live segment.
		items = append(items, p.ParseSegment(normalized))
		return items
	}

	// Each recognized name opens a segment; the lead-in before the first
	// name belongs to the first segment.
	bounds := make([]int, 0, len(starts))
	bounds = append(bounds, 0)
	bounds = append(bounds, starts[1:]...)

	for i, b := range bounds {
		end := len(normalized)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		it := p.ParseSegment(normalized[b:end])
		if i == len(bounds)-1 {
			// The final accumulating segment is the live item.
			items = append(items, it)
		} else if it.Name != "" || it.Quantity != "" {
			items = append(items, it)
		}
	}
	return items
}

// priceBoundaries returns the end offset of every price expression in text,
// in order. Both price patterns are scanned together; when both match, the
// leftmost wins, with number-then-keyword preferred on an exact tie.
func (p *Parser) priceBoundaries(text string) []int {
	var ends []int
	off := 0
	for off < len(text) {
		sub := text[off:]
		numKw := p.patterns.priceNumKw.FindStringSubmatchIndex(sub)
		kwNum := p.patterns.priceKwNum.FindStringSubmatchIndex(sub)
		if numKw == nil && kwNum == nil {
			break
		}

		chosen := numKw
		if chosen == nil || (kwNum != nil && kwNum[2] < chosen[2]) {
			chosen = kwNum
		}

		end := off + chosen[5]
		ends = append(ends, end)
		off = end
	}
	return ends
}

// nameStarts returns the start offset of every known item-name occurrence
// in text, ascending. Longer names claim their span first so a multi-word
// name can never be shadowed by one of its substrings.
func (p *Parser) nameStarts(text string) []int {
	covered := make([]bool, len(text))
	var starts []int

	for _, name := range p.itemNames {
		from := 0
		for {
			j := strings.Index(text[from:], name)
			if j < 0 {
				break
			}
			pos := from + j
			end := pos + len(name)
			if nameBoundaryOK(text, pos, end) && !rangeCovered(covered, pos, end) {
				starts = append(starts, pos)
				for k := pos; k < end; k++ {
					covered[k] = true
				}
			}
			from = pos + 1
		}
	}

	sort.Ints(starts)
	return starts
}

func rangeCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}
