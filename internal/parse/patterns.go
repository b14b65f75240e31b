package parse

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// numberPattern matches a normalized magnitude: digits with an optional
// decimal part (number-word normalization runs before any pattern below, so
// spoken numbers are already digit strings by the time these apply).
const numberPattern = `\d+(?:\.\d+)?`

// compiledPatterns holds every regex the parser needs, compiled once at
// construction. Keyword alternations are sorted longest-first so "kilogram"
// wins over "kg" over "g". Go's regexp prefers earlier alternatives, which
// makes declaration order the precedence order.
type compiledPatterns struct {
	// qtyNumUnit matches "<number> <unit>"; group 1 is the number, group 2
	// the unit. A trailing boundary group prevents "g" from matching the
	// head of an unrelated word.
	qtyNumUnit *regexp.Regexp

	// qtyUnitNum matches "<unit> <number>"; group 1 is the unit, group 2
	// the number.
	qtyUnitNum *regexp.Regexp

	// priceNumKw matches "<number> <rate-keyword>" (e.g. "50 rupees").
	priceNumKw *regexp.Regexp

	// priceKwNum matches "<rate-keyword> <number>" (e.g. "₹ 50").
	priceKwNum *regexp.Regexp

	// tamilFraction is the secondary quantity pass for fraction words fused
	// to a unit without the whitespace the number normalizer relies on
	// (e.g. "அரைக்கிலோ"). Group 1 is the fraction word, group 2 the unit.
	tamilFraction *regexp.Regexp

	// bareNumber finds a leftover magnitude for the no-price-keyword
	// fallback.
	bareNumber *regexp.Regexp
}

func compilePatterns(units, rateKeywords []string) *compiledPatterns {
	unitAlt := alternation(units)
	rateAlt := alternation(rateKeywords)

	return &compiledPatterns{
		qtyNumUnit: regexp.MustCompile(
			`(` + numberPattern + `)\s*(` + unitAlt + `)(?:[^\p{L}\p{M}]|$)`),
		qtyUnitNum: regexp.MustCompile(
			`(?:^|[^\p{L}\p{M}])(` + unitAlt + `)\s*(` + numberPattern + `)`),
		priceNumKw: regexp.MustCompile(
			`(` + numberPattern + `)\s*(` + rateAlt + `)(?:[^\p{L}\p{M}]|$)`),
		priceKwNum: regexp.MustCompile(
			`(?:^|[^\p{L}\p{M}])(` + rateAlt + `)\s*(` + numberPattern + `)`),
		tamilFraction: regexp.MustCompile(
			`(அரை|கால்|முக்கால்)\s*(?:க்)?\s*(கிலோ|லிட்டர்|kg|l)`),
		bareNumber: regexp.MustCompile(numberPattern),
	}
}

// alternation builds a regex alternation from keywords, longest first so no
// keyword can shadow a longer one it prefixes.
func alternation(keywords []string) string {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, kw := range sorted {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return strings.Join(quoted, "|")
}

// extraction is the result of locating a two-group pattern in working text:
// the two captured strings plus the byte span that should be removed.
type extraction struct {
	first, second string
	start, end    int
}

// findExtraction locates re's first match in text and returns the capture
// groups with the span covering both (boundary characters consumed by the
// pattern are excluded so stripping never eats neighbouring text).
func findExtraction(re *regexp.Regexp, text string) (extraction, bool) {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return extraction{}, false
	}
	return extraction{
		first:  text[idx[2]:idx[3]],
		second: text[idx[4]:idx[5]],
		start:  idx[2],
		end:    idx[5],
	}, true
}

// stripSpan removes text[start:end], gluing the halves with one space so
// adjacent tokens cannot fuse.
func stripSpan(text string, start, end int) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text[:start]+" "+text[end:]), " "))
}

// nameBoundaryOK reports whether text[start:end] sits on letter boundaries:
// the rune before start and the rune at end must not be letters or combining
// marks. Used by the item-name fallback segmentation, which scans with plain
// substring search.
func nameBoundaryOK(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			return false
		}
	}
	return true
}
