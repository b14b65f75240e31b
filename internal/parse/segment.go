package parse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MSathish01/VoiceBill/internal/formalize"
	"github.com/MSathish01/VoiceBill/internal/lexicon"
)

// Parser extracts line items from bounded transcript segments and from the
// continuous transcript stream. It is read-only after construction and safe
// for concurrent use; every parse call is independent.
type Parser struct {
	tables      *lexicon.Tables
	formalizer  *formalize.Formalizer
	numberWords map[string]float64
	patterns    *compiledPatterns

	// itemNames is the lexicon vocabulary, lowercased, sorted longest
	// first for the fallback segmentation pass.
	itemNames []string

	// nameCleanup strips everything that cannot be part of an item name:
	// anything outside Latin letters, the Tamil block, hyphens and spaces.
	nameCleanup *regexp.Regexp

	fractionValues map[string]float64
}

// New builds a Parser over the given tables. The formalizer must be built
// over the same tables so fuzzy name correction and segmentation agree on
// the vocabulary.
func New(tables *lexicon.Tables, f *formalize.Formalizer) *Parser {
	names := make([]string, len(tables.Items))
	for i, n := range tables.Items {
		names[i] = strings.ToLower(n)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return utf8.RuneCountInString(names[i]) > utf8.RuneCountInString(names[j])
	})

	return &Parser{
		tables:      tables,
		formalizer:  f,
		numberWords: tables.NumberWords(),
		patterns:    compilePatterns(tables.QuantityUnits, tables.RateKeywords),
		itemNames:   names,
		nameCleanup: regexp.MustCompile(`[^a-zA-Z\x{0B80}-\x{0BFF}\- ]+`),
		fractionValues: map[string]float64{
			"அரை": 0.5, "கால்": 0.25, "முக்கால்": 0.75,
		},
	}
}

// ParseSegment extracts a single [Item] from one bounded slice of transcript
// text. Each extraction removes its match from the working text before the
// next runs, so later stages only ever see the residue. The function is
// total: noise in, an Item with absent fields out, never an error.
func (p *Parser) ParseSegment(segment string) Item {
	working := p.normalizeNumbers(strings.ToLower(segment))

	var item Item

	// Quantity: number↔unit in either order, then the fused Tamil
	// fraction pass.
	qtyMagnitude := 1.0
	haveQty := false
	if ex, ok := findExtraction(p.patterns.qtyNumUnit, working); ok {
		item.Quantity = ex.first + " " + ex.second
		qtyMagnitude = parseMagnitude(ex.first)
		working = stripSpan(working, ex.start, ex.end)
		haveQty = true
	} else if ex, ok := findExtraction(p.patterns.qtyUnitNum, working); ok {
		item.Quantity = ex.second + " " + ex.first
		qtyMagnitude = parseMagnitude(ex.second)
		working = stripSpan(working, ex.start, ex.end)
		haveQty = true
	} else if ex, ok := findExtraction(p.patterns.tamilFraction, working); ok {
		item.Quantity = ex.first + " " + ex.second
		qtyMagnitude = p.fractionValues[ex.first]
		working = stripSpan(working, ex.start, ex.end)
		haveQty = true
	}

	// Price: number↔rate-keyword in either order. First match wins.
	totalPrice := 0.0
	havePrice := false
	if ex, ok := findExtraction(p.patterns.priceNumKw, working); ok {
		totalPrice = parseMagnitude(ex.first)
		working = stripSpan(working, ex.start, ex.end)
		havePrice = true
	} else if ex, ok := findExtraction(p.patterns.priceKwNum, working); ok {
		totalPrice = parseMagnitude(ex.second)
		working = stripSpan(working, ex.start, ex.end)
		havePrice = true
	} else if haveQty {
		// No price keyword, but a quantity was spoken: a remaining bare
		// number is taken as the total price.
		if idx := p.patterns.bareNumber.FindStringIndex(working); idx != nil {
			totalPrice = parseMagnitude(working[idx[0]:idx[1]])
			working = stripSpan(working, idx[0], idx[1])
			havePrice = true
		}
	}

	// The spoken number is the total for the whole quantity; what we store
	// is the per-unit rate.
	if havePrice {
		divisor := qtyMagnitude
		if divisor <= 0 {
			divisor = 1
		}
		item.Rate = rateOf(totalPrice / divisor)
	}

	item.Name = p.extractName(working)
	return item
}

// extractName cleans the residual text into an item name: drops everything
// outside the name alphabet, collapses whitespace, then formalizes Tamil or
// capitalizes Latin. Returns "" when no letters remain.
func (p *Parser) extractName(residual string) string {
	cleaned := p.nameCleanup.ReplaceAllString(residual, " ")
	cleaned = strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
	cleaned = strings.Trim(cleaned, "- ")
	if cleaned == "" {
		return ""
	}

	if formalize.ContainsTamil(cleaned) {
		return p.formalizer.Formalize(cleaned)
	}
	return capitalizeFirst(cleaned)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// parseMagnitude converts a normalized digit string to its value,
// defaulting to 1 when the parse fails. The default is the same business
// rule the rate computation uses for an absent quantity.
func parseMagnitude(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return v
}
