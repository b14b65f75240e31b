package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// normalizeNumbers replaces every token that is a known spoken number word
// (in either language) with its digit string. Matching is token-based, so a
// word is only replaced when delimited by whitespace or the string edge and
// number words can never corrupt the inside of a longer word.
// Leading/trailing punctuation on a token is preserved around the digits.
//
// The result is whitespace-collapsed; everything downstream of this call
// operates on the normalized string, so the collapse is observable only as
// single-spaced output.
func (p *Parser) normalizeNumbers(text string) string {
	fields := strings.Fields(text)
	for i, tok := range fields {
		prefix, core, suffix := splitAffixes(tok)
		if core == "" {
			continue
		}
		if v, ok := p.numberWords[strings.ToLower(core)]; ok {
			fields[i] = prefix + formatMagnitude(v) + suffix
		}
	}
	return strings.Join(fields, " ")
}

// splitAffixes splits leading and trailing non-letter, non-digit runes off a
// token so "fifty," still matches the number table.
func splitAffixes(tok string) (prefix, core, suffix string) {
	runes := []rune(tok)
	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// formatMagnitude renders a numeric value the way the patterns expect:
// integers without a decimal part, fractions with the shortest exact form
// ("0.5", "0.25").
func formatMagnitude(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
