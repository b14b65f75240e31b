// Package lexicon holds the static keyword and vocabulary tables the
// transcript parsing engine runs on: spoken-number maps for Tamil and
// English, quantity and price keyword lists, the colloquial→formal Tamil
// mapping, the grocery item vocabulary, and the exact ASR correction map.
//
// Tables are data, not behaviour. A [Tables] value is built once at startup
// (either [Default] or [Load] with a locale overlay), validated, and then
// treated as immutable: the parser and formalizer receive it by injection
// and never mutate it. Swapping the tables for another locale requires no
// change to any algorithm.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// Tables is the complete lexicon set consumed by the formalizer and parser.
// All fields are read-only after construction.
type Tables struct {
	// TamilNumbers maps spoken Tamil number words (formal and dialectal)
	// to their numeric value. Fractions use 0.5, 0.25 and 0.75.
	TamilNumbers map[string]float64 `yaml:"tamil_numbers"`

	// EnglishNumbers maps spoken English number words to their numeric
	// value, including common ASR mis-hearings ("won" → 1, "too" → 2).
	EnglishNumbers map[string]float64 `yaml:"english_numbers"`

	// QuantityUnits lists every unit keyword (weight, volume, count) in
	// both languages. Order is irrelevant; pattern compilation sorts by
	// length so "kilogram" is preferred over "kg" over "g".
	QuantityUnits []string `yaml:"quantity_units"`

	// RateKeywords lists every price keyword (rupee variants, currency
	// symbols, Tamil ரூபாய் variants).
	RateKeywords []string `yaml:"rate_keywords"`

	// Colloquial maps colloquially spoken Tamil forms to their formal
	// written equivalent. Lookup is exact, case-sensitive first.
	Colloquial map[string]string `yaml:"colloquial"`

	// Corrections maps known ASR mis-recognitions to the canonical token.
	// Many keys may share one canonical value.
	Corrections map[string]string `yaml:"corrections"`

	// Items is the grocery domain vocabulary in declaration order. The
	// order is load-bearing: fuzzy-match ties resolve to the earliest
	// entry, so it must stay stable across releases.
	Items []string `yaml:"items"`

	// Loanwords lists English tokens that legitimately appear inside
	// Tamil speech (units, common grocery English) and must pass through
	// formalization unchanged.
	Loanwords []string `yaml:"loanwords"`
}

// NumberWords returns a merged view of the Tamil and English number maps.
// The result is a fresh map the caller may index freely.
func (t *Tables) NumberWords() map[string]float64 {
	merged := make(map[string]float64, len(t.TamilNumbers)+len(t.EnglishNumbers))
	for w, v := range t.TamilNumbers {
		merged[w] = v
	}
	for w, v := range t.EnglishNumbers {
		merged[w] = v
	}
	return merged
}

// IsLoanword reports whether token is on the English pass-through allowlist.
// Matching ignores case; recognizers capitalize inconsistently.
func (t *Tables) IsLoanword(token string) bool {
	for _, w := range t.Loanwords {
		if strings.EqualFold(w, token) {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants every lexicon must satisfy.
// It returns a joined error listing all violations found.
func (t *Tables) Validate() error {
	var errs []error

	if len(t.TamilNumbers) == 0 {
		errs = append(errs, errors.New("lexicon: tamil_numbers must not be empty"))
	}
	if len(t.EnglishNumbers) == 0 {
		errs = append(errs, errors.New("lexicon: english_numbers must not be empty"))
	}
	if len(t.QuantityUnits) == 0 {
		errs = append(errs, errors.New("lexicon: quantity_units must not be empty"))
	}
	if len(t.RateKeywords) == 0 {
		errs = append(errs, errors.New("lexicon: rate_keywords must not be empty"))
	}

	for word, value := range t.TamilNumbers {
		if word == "" {
			errs = append(errs, errors.New("lexicon: tamil_numbers contains an empty key"))
		}
		if value < 0 {
			errs = append(errs, fmt.Errorf("lexicon: tamil_numbers[%q] = %v is negative", word, value))
		}
	}
	for word, value := range t.EnglishNumbers {
		if word == "" {
			errs = append(errs, errors.New("lexicon: english_numbers contains an empty key"))
		}
		if value < 0 {
			errs = append(errs, fmt.Errorf("lexicon: english_numbers[%q] = %v is negative", word, value))
		}
	}

	// A correction mapping to the empty string would erase tokens during
	// formalization; reject outright.
	for from, to := range t.Colloquial {
		if from == "" || to == "" {
			errs = append(errs, fmt.Errorf("lexicon: colloquial mapping %q → %q has an empty side", from, to))
		}
	}
	for from, to := range t.Corrections {
		if from == "" || to == "" {
			errs = append(errs, fmt.Errorf("lexicon: correction mapping %q → %q has an empty side", from, to))
		}
	}

	seen := make(map[string]int, len(t.Items))
	for i, item := range t.Items {
		if item == "" {
			errs = append(errs, fmt.Errorf("lexicon: items[%d] is empty", i))
			continue
		}
		if prev, dup := seen[item]; dup {
			errs = append(errs, fmt.Errorf("lexicon: items[%d] %q duplicates items[%d]", i, item, prev))
		}
		seen[item] = i
	}

	for i, kw := range t.QuantityUnits {
		if kw == "" {
			errs = append(errs, fmt.Errorf("lexicon: quantity_units[%d] is empty", i))
		}
	}
	for i, kw := range t.RateKeywords {
		if kw == "" {
			errs = append(errs, fmt.Errorf("lexicon: rate_keywords[%d] is empty", i))
		}
	}

	return errors.Join(errs...)
}
