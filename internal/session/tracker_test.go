package session_test

import (
	"testing"

	"github.com/MSathish01/VoiceBill/internal/parse"
	"github.com/MSathish01/VoiceBill/internal/session"
)

func item(name, quantity string, rate float64) parse.Item {
	return parse.Item{Name: name, Quantity: quantity, Rate: &rate}
}

func TestCommitCompleted_SkipsIncompleteItems(t *testing.T) {
	t.Parallel()

	tr := session.NewTracker()
	live := parse.Item{Name: "Onion"}
	fresh := tr.CommitCompleted([]parse.Item{item("Tomato", "2 kg", 25), live})
	if len(fresh) != 1 || fresh[0].Name != "Tomato" {
		t.Fatalf("fresh = %+v, want only the complete item", fresh)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want the live item left uncommitted", tr.Len())
	}
}

func TestCommitCompleted_IdempotentAcrossReparses(t *testing.T) {
	t.Parallel()

	tr := session.NewTracker()
	first := tr.CommitCompleted([]parse.Item{item("Tomato", "2 kg", 25)})
	if len(first) != 1 {
		t.Fatalf("first commit = %+v, want one item", first)
	}

	// The next transcript update re-emits the same item plus a new one.
	second := tr.CommitCompleted([]parse.Item{
		item("Tomato", "2 kg", 25),
		item("Onion", "1 kg", 20),
	})
	if len(second) != 1 || second[0].Name != "Onion" {
		t.Fatalf("second commit = %+v, want only the new item", second)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestCommitCompleted_FingerprintDistinguishesRate(t *testing.T) {
	t.Parallel()

	// Same name and quantity at a different rate is a different bill line.
	tr := session.NewTracker()
	tr.CommitCompleted([]parse.Item{item("Tomato", "2 kg", 25)})
	fresh := tr.CommitCompleted([]parse.Item{item("Tomato", "2 kg", 30)})
	if len(fresh) != 1 {
		t.Fatalf("fresh = %+v, want the re-priced item committed", fresh)
	}
}

func TestCommitCompleted_ReturnsNonNilWhenNothingFresh(t *testing.T) {
	t.Parallel()

	tr := session.NewTracker()
	fresh := tr.CommitCompleted([]parse.Item{{Name: "Onion"}})
	if fresh == nil {
		t.Fatal("fresh must be non-nil")
	}
	if len(fresh) != 0 {
		t.Errorf("fresh = %+v, want none", fresh)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	tr := session.NewTracker()
	it := item("Tomato", "2 kg", 25)
	tr.CommitCompleted([]parse.Item{it})
	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
	if fresh := tr.CommitCompleted([]parse.Item{it}); len(fresh) != 1 {
		t.Errorf("post-reset commit = %+v, want the item committed again", fresh)
	}
}
