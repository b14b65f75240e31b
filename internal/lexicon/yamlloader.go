package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML lexicon overlay from path and merges it over the
// built-in defaults. Any table present in the file replaces the default
// table wholesale; absent tables keep their defaults. The merged result
// is validated before being returned.
//
// Example overlay swapping the unit keywords for another locale:
//
//	quantity_units:
//	  - kg
//	  - g
//	  - சேர்
func Load(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: parse %q: %w", path, err)
	}
	return t, nil
}

// LoadFromReader decodes a YAML lexicon overlay from r, merges it over
// [Default], and validates the result. Useful in tests where overlays are
// constructed from string literals.
func LoadFromReader(r io.Reader) (*Tables, error) {
	var overlay Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown keys to catch typos
	if err := dec.Decode(&overlay); err != nil {
		return nil, fmt.Errorf("lexicon: decode yaml: %w", err)
	}

	t := Default()
	if overlay.TamilNumbers != nil {
		t.TamilNumbers = overlay.TamilNumbers
	}
	if overlay.EnglishNumbers != nil {
		t.EnglishNumbers = overlay.EnglishNumbers
	}
	if overlay.QuantityUnits != nil {
		t.QuantityUnits = overlay.QuantityUnits
	}
	if overlay.RateKeywords != nil {
		t.RateKeywords = overlay.RateKeywords
	}
	if overlay.Colloquial != nil {
		t.Colloquial = overlay.Colloquial
	}
	if overlay.Corrections != nil {
		t.Corrections = overlay.Corrections
	}
	if overlay.Items != nil {
		t.Items = overlay.Items
	}
	if overlay.Loanwords != nil {
		t.Loanwords = overlay.Loanwords
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
