// Package formalize implements the linguistic formalization engine: it turns
// colloquial, noisy recognizer text into formal written Tamil (or cleaned-up
// English) suitable for a printed bill.
//
// The pipeline is strictly ordered:
//
//  1. Unicode NFC canonicalization, so decomposed combining sequences hash
//     the same as the lexicon entries.
//  2. Whitespace normalization: zero-width marks stripped, runs collapsed.
//  3. Punctuation unification: curly quotes, ellipses, en/em dashes.
//  4. Per-token processing: numeric and punctuation-only tokens pass
//     through; English loanwords on the allowlist pass through; colloquial
//     forms map exactly to their formal equivalent; remaining Tamil-bearing
//     tokens get fuzzy lexicon correction.
//  5. Advisory orthography validation, collected as diagnostics that never
//     alter the output.
//
// Every substitution is recorded as a [Correction] so callers can audit or
// display what the engine changed. The engine is a pure function over its
// injected tables: no I/O, no mutation, no errors.
package formalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/MSathish01/VoiceBill/internal/lexicon"
	"github.com/MSathish01/VoiceBill/internal/match"
)

// Kind labels which pipeline stage produced a [Correction].
type Kind string

const (
	// KindDiglossia marks an exact colloquial→formal substitution.
	KindDiglossia Kind = "diglossia"

	// KindASRError marks a fuzzy lexicon correction of a misheard token.
	KindASRError Kind = "asr_error"
)

// Correction captures a single token-level substitution made by the engine.
type Correction struct {
	// Original is the token as it appeared in the input.
	Original string

	// Corrected is the replacement token.
	Corrected string

	// Confidence is 1.0 for exact diglossia hits and the similarity score
	// for fuzzy corrections.
	Confidence float64

	// Kind identifies the stage that produced this substitution.
	Kind Kind
}

// Diagnostic flags a token whose Tamil orthography looks malformed.
// Diagnostics are advisory: they never block or alter output.
type Diagnostic struct {
	// Token is the offending token after all substitutions.
	Token string

	// Issue is a short machine-readable label: "word_initial_virama" or
	// "interior_standalone_vowel".
	Issue string
}

// Result is the detailed output of a formalization pass.
type Result struct {
	// Text is the formalized text, tokens rejoined with single spaces.
	Text string

	// Corrections lists every substitution in token order. Empty (non-nil)
	// when nothing was changed.
	Corrections []Correction

	// Diagnostics lists advisory orthography findings.
	Diagnostics []Diagnostic
}

// Option configures a [Formalizer].
type Option func(*Formalizer)

// WithFuzzyThreshold overrides the similarity floor for the fuzzy correction
// stage. Default: [match.DefaultThreshold].
func WithFuzzyThreshold(threshold float64) Option {
	return func(f *Formalizer) {
		f.threshold = threshold
	}
}

// Formalizer is the formalization engine. It is read-only after construction
// and safe for concurrent use.
type Formalizer struct {
	tables    *lexicon.Tables
	index     *match.Index
	threshold float64
}

// New builds a [Formalizer] over the given lexicon tables.
func New(tables *lexicon.Tables, opts ...Option) *Formalizer {
	f := &Formalizer{
		tables:    tables,
		index:     match.NewIndex(tables.Items),
		threshold: match.DefaultThreshold,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Formalize returns the formalized form of text, discarding the correction
// record. This is the entry point the export layer calls before rendering
// item names into a document.
func (f *Formalizer) Formalize(text string) string {
	return f.FormalizeDetailed(text).Text
}

// FormalizeDetailed runs the full pipeline and returns the formalized text
// together with the itemized corrections and orthography diagnostics.
func (f *Formalizer) FormalizeDetailed(text string) Result {
	res := Result{Corrections: []Correction{}}

	cleaned := normalizePunctuation(stripInvisible(norm.NFC.String(text)))
	tokens := strings.Fields(cleaned)

	for i, tok := range tokens {
		if isPassthrough(tok) {
			continue
		}
		if f.tables.IsLoanword(tok) {
			continue
		}

		// Exact diglossia lookup, case-sensitive first.
		if formal, ok := f.tables.Colloquial[tok]; ok {
			tokens[i] = formal
			res.Corrections = append(res.Corrections, Correction{
				Original: tok, Corrected: formal, Confidence: 1, Kind: KindDiglossia,
			})
			continue
		}
		if formal, ok := f.tables.Colloquial[strings.ToLower(tok)]; ok {
			tokens[i] = formal
			res.Corrections = append(res.Corrections, Correction{
				Original: tok, Corrected: formal, Confidence: 1, Kind: KindDiglossia,
			})
			continue
		}

		// Known mis-recognitions resolve exactly before the fuzzy pass,
		// in either script.
		if canonical, ok := f.tables.Corrections[strings.ToLower(tok)]; ok {
			tokens[i] = canonical
			res.Corrections = append(res.Corrections, Correction{
				Original: tok, Corrected: canonical, Confidence: 1, Kind: KindASRError,
			})
			continue
		}

		// The fuzzy stage is reserved for Tamil-bearing tokens; English
		// tokens that survived the allowlist and the exact tables stay put.
		if !ContainsTamil(tok) {
			continue
		}

		if best, score := f.index.Closest(tok, f.threshold); best != tok {
			tokens[i] = best
			res.Corrections = append(res.Corrections, Correction{
				Original: tok, Corrected: best, Confidence: score, Kind: KindASRError,
			})
		}
	}

	for _, tok := range tokens {
		if !ContainsTamil(tok) {
			continue
		}
		if startsWithBareMei(tok) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Token: tok, Issue: "word_initial_virama"})
		}
		if hasInteriorVowel(tok) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Token: tok, Issue: "interior_standalone_vowel"})
		}
	}

	res.Text = strings.Join(tokens, " ")
	return res
}

// isPassthrough reports whether the token is numeric or punctuation-only and
// therefore skips every substitution stage.
func isPassthrough(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			return false
		}
	}
	return true
}

// invisibleMarks are zero-width code points recognizers occasionally emit
// around code-mixed boundaries. Escapes keep them visible in source (a raw
// BOM would not even compile mid-file).
var invisibleMarks = strings.NewReplacer(
	"\u200B", "", // zero width space
	"\u200C", "", // zero width non-joiner
	"\u200D", "", // zero width joiner
	"\uFEFF", "", // byte order mark
)

func stripInvisible(s string) string {
	return invisibleMarks.Replace(s)
}

// punctuationVariants unifies typographic punctuation to ASCII so lexicon
// lookups and regex patterns see one spelling.
var punctuationVariants = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"…", "...",
	"–", "-", "—", "-",
)

func normalizePunctuation(s string) string {
	return punctuationVariants.Replace(s)
}
