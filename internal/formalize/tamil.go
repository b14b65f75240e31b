package formalize

// Tamil script helpers. The Tamil block spans U+0B80–U+0BFF; within it the
// ranges that matter for the orthography heuristics are the independent
// vowels (uyir, U+0B85–U+0B94), the consonants (U+0B95–U+0BB9) and the
// virama/pulli (U+0BCD) that turns a consonant into its bare mei form.

const (
	tamilBlockLo = 0x0B80
	tamilBlockHi = 0x0BFF

	tamilVowelLo = 0x0B85
	tamilVowelHi = 0x0B94

	tamilConsonantLo = 0x0B95
	tamilConsonantHi = 0x0BB9

	tamilVirama = 0x0BCD
)

// isTamil reports whether r falls inside the Tamil Unicode block.
func isTamil(r rune) bool {
	return r >= tamilBlockLo && r <= tamilBlockHi
}

// isTamilVowel reports whether r is an independent vowel glyph (uyir).
func isTamilVowel(r rune) bool {
	return r >= tamilVowelLo && r <= tamilVowelHi
}

// isTamilConsonant reports whether r is a consonant base glyph.
func isTamilConsonant(r rune) bool {
	return r >= tamilConsonantLo && r <= tamilConsonantHi
}

// ContainsTamil reports whether s has at least one code point in the Tamil
// block. This is the script-detection rule the whole engine shares.
func ContainsTamil(s string) bool {
	for _, r := range s {
		if isTamil(r) {
			return true
		}
	}
	return false
}

// startsWithBareMei reports whether the token opens with a consonant
// immediately followed by a virama, an invalid word-initial form in Tamil
// orthography and a strong hint the recognizer glued word fragments.
func startsWithBareMei(token string) bool {
	runes := []rune(token)
	return len(runes) >= 2 && isTamilConsonant(runes[0]) && runes[1] == tamilVirama
}

// hasInteriorVowel reports whether a standalone vowel glyph appears strictly
// between the first and last rune of the token. Independent vowels are only
// legal word-initially, so an interior one signals a bad word split.
func hasInteriorVowel(token string) bool {
	runes := []rune(token)
	for i := 1; i < len(runes)-1; i++ {
		if isTamilVowel(runes[i]) {
			return true
		}
	}
	return false
}
