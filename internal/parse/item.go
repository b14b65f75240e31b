// Package parse implements the voice-transcript parsing engine: it slices a
// continuously growing recognizer transcript into line-item segments and
// extracts a name, a quantity, and a per-unit rate from each one.
//
// The engine is stateless (every call re-parses the full transcript it is
// given and depends on nothing else), so the caller may invoke it on every
// interim recognizer update without locking.
package parse

import (
	"strconv"
	"strings"
)

// Item is one parsed line item. Absent fields are signalled explicitly:
// empty string for Name and Quantity, nil for Rate. A zero-valued *Rate
// means the speaker said "zero rupees"; nil means no price was heard yet.
type Item struct {
	// Name is the canonicalized item label: formalized Tamil, or Latin
	// text with its first letter capitalized.
	Name string `json:"name,omitempty"`

	// Quantity combines the numeric magnitude and unit keyword as matched,
	// joined with a single space (e.g. "2 kg", "0.5 கிலோ").
	Quantity string `json:"quantity,omitempty"`

	// Rate is the per-unit price: the spoken total divided by the quantity
	// magnitude. It is never the raw spoken total when a quantity is known.
	Rate *float64 `json:"rate,omitempty"`
}

// Empty reports whether no field was extracted at all.
func (it Item) Empty() bool {
	return it.Name == "" && it.Quantity == "" && it.Rate == nil
}

// Complete reports whether every field was extracted. The session layer
// only auto-commits complete items.
func (it Item) Complete() bool {
	return it.Name != "" && it.Quantity != "" && it.Rate != nil
}

// Fingerprint returns a stable key over (name, quantity, rate) used by the
// session tracker to recognize already-committed items across re-parses of
// a growing transcript.
func (it Item) Fingerprint() string {
	var b strings.Builder
	b.WriteString(it.Name)
	b.WriteByte('|')
	b.WriteString(it.Quantity)
	b.WriteByte('|')
	if it.Rate != nil {
		b.WriteString(strconv.FormatFloat(*it.Rate, 'f', -1, 64))
	}
	return b.String()
}

// rateOf allocates an optional rate.
func rateOf(v float64) *float64 {
	return &v
}
