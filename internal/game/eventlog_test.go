package game

import (
	"fmt"
	"testing"
)

func TestEventLog_ChronologicalOrder(t *testing.T) {
	el := NewEventLog(logMaxEntries)
	el.Add(1, EventKey, "W")
	el.Add(2, EventCopy, "copied (0,0)")
	got := el.Recent(0)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Frame != 1 || got[1].Frame != 2 {
		t.Fatalf("expected frames 1,2, got %d,%d", got[0].Frame, got[1].Frame)
	}
}

func TestEventLog_DropsOldestPastCapacity(t *testing.T) {
	el := NewEventLog(3)
	for i := 0; i < 5; i++ {
		el.Add(i, EventKey, fmt.Sprintf("e%d", i))
	}
	if el.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", el.Len())
	}
	got := el.Recent(0)
	for i, want := range []int{2, 3, 4} {
		if got[i].Frame != want {
			t.Fatalf("expected frame %d at %d, got %d", want, i, got[i].Frame)
		}
	}
}

func TestEventLog_RecentLimitsToNewest(t *testing.T) {
	el := NewEventLog(logMaxEntries)
	for i := 0; i < 10; i++ {
		el.Add(i, EventKey, "k")
	}
	got := el.Recent(4)
	if len(got) != 4 || got[0].Frame != 6 || got[3].Frame != 9 {
		t.Fatalf("expected frames 6..9, got %+v", got)
	}
	if all := el.Recent(50); len(all) != 10 {
		t.Fatalf("expected all 10 entries when asking for more, got %d", len(all))
	}
}

func TestEventLog_RecentReturnsCopy(t *testing.T) {
	el := NewEventLog(2)
	el.Add(1, EventKey, "W")
	got := el.Recent(0)
	got[0].Message = "changed"
	if el.Recent(0)[0].Message != "W" {
		t.Fatalf("expected stored entry to be unchanged, got %q", el.Recent(0)[0].Message)
	}
}

func TestNewEventLog_CapacityAtLeastOne(t *testing.T) {
	el := NewEventLog(0)
	el.Add(1, EventKey, "a")
	el.Add(2, EventKey, "b")
	got := el.Recent(0)
	if len(got) != 1 || got[0].Frame != 2 {
		t.Fatalf("expected only the newest entry, got %+v", got)
	}
}

func TestEventKind_Colour(t *testing.T) {
	if EventError.Colour() != playerColors[0] {
		t.Fatalf("expected error swatch %v, got %v", playerColors[0], EventError.Colour())
	}
	if EventTurn.Colour() != turnRingColor {
		t.Fatalf("expected turn swatch %v, got %v", turnRingColor, EventTurn.Colour())
	}
	if EventKey.Colour() == EventCopy.Colour() {
		t.Fatal("expected key and copy events to use different swatches")
	}
}
