package parse_test

import (
	"reflect"
	"testing"
)

func TestParseContinuousInput_BlankTranscript(t *testing.T) {
	t.Parallel()

	items := newParser(t).ParseContinuousInput("   ")
	if items == nil {
		t.Fatal("items must be non-nil")
	}
	if len(items) != 0 {
		t.Errorf("items = %+v, want none", items)
	}
}

func TestParseContinuousInput_TwoPricedItems(t *testing.T) {
	t.Parallel()

	items := newParser(t).ParseContinuousInput(
		"tomato 2 kg 50 rupees onion 1 kg 20 rupees")
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[0].Name != "Tomato" || rateValue(t, items[0]) != 25 {
		t.Errorf("items[0] = %+v, want Tomato at 25", items[0])
	}
	if items[1].Name != "Onion" || rateValue(t, items[1]) != 20 {
		t.Errorf("items[1] = %+v, want Onion at 20", items[1])
	}
}

func TestParseContinuousInput_TrailingLiveItem(t *testing.T) {
	t.Parallel()

	// Text after the last price expression is the item being spoken right
	// now; it is appended without any completeness requirement.
	items := newParser(t).ParseContinuousInput(
		"tomato 2 kg 50 rupees onion")
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	live := items[1]
	if live.Name != "Onion" {
		t.Errorf("live.Name = %q, want %q", live.Name, "Onion")
	}
	if live.Rate != nil || live.Quantity != "" {
		t.Errorf("live = %+v, want only a name so far", live)
	}
}

func TestParseContinuousInput_TamilTranscript(t *testing.T) {
	t.Parallel()

	items := newParser(t).ParseContinuousInput(
		"இரண்டு கிலோ தக்காளி ஐம்பது ரூபாய் ஒரு கிலோ வெங்காயம்")
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[0].Name != "தக்காளி" || rateValue(t, items[0]) != 25 {
		t.Errorf("items[0] = %+v, want தக்காளி at 25", items[0])
	}
	if items[1].Name != "வெங்காயம்" || items[1].Rate != nil {
		t.Errorf("items[1] = %+v, want live வெங்காயம் with no rate", items[1])
	}
	if items[1].Quantity != "1 கிலோ" {
		t.Errorf("items[1].Quantity = %q, want %q", items[1].Quantity, "1 கிலோ")
	}
}

func TestParseContinuousInput_NameBoundariesWithoutPrices(t *testing.T) {
	t.Parallel()

	// With zero price expressions the parser falls back to item-name
	// segmentation: each known name opens a segment.
	items := newParser(t).ParseContinuousInput("tomato 2 kg onion 1 kg")
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[0].Name != "Tomato" || items[0].Quantity != "2 kg" {
		t.Errorf("items[0] = %+v, want Tomato 2 kg", items[0])
	}
	if items[1].Name != "Onion" || items[1].Quantity != "1 kg" {
		t.Errorf("items[1] = %+v, want Onion 1 kg", items[1])
	}
	for i, it := range items {
		if it.Rate != nil {
			t.Errorf("items[%d].Rate = %v, want absent", i, *it.Rate)
		}
	}
}

func TestParseContinuousInput_SingleLiveItem(t *testing.T) {
	t.Parallel()

	items := newParser(t).ParseContinuousInput("tomato 2 kg")
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1: %+v", len(items), items)
	}
	if items[0].Name != "Tomato" || items[0].Quantity != "2 kg" || items[0].Rate != nil {
		t.Errorf("items[0] = %+v, want live Tomato 2 kg without rate", items[0])
	}
}

func TestParseContinuousInput_UnrecognizableTextIsOneLiveSegment(t *testing.T) {
	t.Parallel()

	items := newParser(t).ParseContinuousInput("hello there friend")
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1: %+v", len(items), items)
	}
	if items[0].Name != "Hello there friend" {
		t.Errorf("Name = %q, want the whole text as the live name", items[0].Name)
	}
}

func TestParseContinuousInput_LongerNameWinsOverItsPrefix(t *testing.T) {
	t.Parallel()

	// "eggs" must claim the span before its prefix "egg" can, so exactly
	// one segment opens here.
	items := newParser(t).ParseContinuousInput("eggs 2 dozen")
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1: %+v", len(items), items)
	}
	if items[0].Name != "Eggs" || items[0].Quantity != "2 dozen" {
		t.Errorf("items[0] = %+v, want Eggs 2 dozen", items[0])
	}
}

func TestParseContinuousInput_Deterministic(t *testing.T) {
	t.Parallel()

	p := newParser(t)
	in := "tomato 2 kg 50 rupees அரைக்கிலோ வெங்காயம் 20 rupees milk"
	first := p.ParseContinuousInput(in)
	for range 5 {
		if got := p.ParseContinuousInput(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("re-parse diverged: %+v vs %+v", got, first)
		}
	}
}

func TestParseContinuousInput_NoisyFillerBetweenItems(t *testing.T) {
	t.Parallel()

	// Filler between the price boundary and the next item must not create
	// extra segments or leak into the next name.
	items := newParser(t).ParseContinuousInput(
		"tomato 2 kg 50 rupees okay then onion 1 kg 20 rupees")
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[1].Name != "Okay then onion" {
		t.Errorf("items[1].Name = %q, want filler folded into the segment name", items[1].Name)
	}
	if rateValue(t, items[1]) != 20 {
		t.Errorf("items[1].Rate = %v, want 20", *items[1].Rate)
	}
}
