package compare

import (
	"errors"
	"testing"
)

func TestApplyAddCap(t *testing.T) {
	members := []Member{
		{ItemType: "course", ItemID: 1},
		{ItemType: "course", ItemID: 2},
		{ItemType: "scholarship", ItemID: 3},
	}

	_, changed, err := applyAdd(members, Member{ItemType: "course", ItemID: 4})
	if !errors.Is(err, ErrCompareFull) {
		t.Fatalf("expected ErrCompareFull for 4th item, got %v", err)
	}
	if changed {
		t.Error("rejected add must not report a change")
	}
}

func TestApplyAddDuplicateIsNoOp(t *testing.T) {
	members := []Member{
		{ItemType: "course", ItemID: 1},
		{ItemType: "course", ItemID: 2},
		{ItemType: "scholarship", ItemID: 3},
	}

	// A duplicate must succeed even when the set is full.
	got, changed, err := applyAdd(members, Member{ItemType: "course", ItemID: 2})
	if err != nil {
		t.Fatalf("duplicate add returned error: %v", err)
	}
	if changed {
		t.Error("duplicate add must not report a change")
	}
	if len(got) != 3 {
		t.Errorf("expected 3 members, got %d", len(got))
	}
}

func TestApplyAddGrowsToCap(t *testing.T) {
	var members []Member
	for i := uint(1); i <= 3; i++ {
		var changed bool
		var err error
		members, changed, err = applyAdd(members, Member{ItemType: "course", ItemID: i})
		if err != nil {
			t.Fatalf("add %d returned error: %v", i, err)
		}
		if !changed {
			t.Fatalf("add %d did not change the set", i)
		}
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
}

func TestApplyRemove(t *testing.T) {
	members := []Member{
		{ItemType: "course", ItemID: 1},
		{ItemType: "scholarship", ItemID: 2},
		{ItemType: "course", ItemID: 3},
	}

	got, changed := applyRemove(members, Member{ItemType: "scholarship", ItemID: 2})
	if !changed {
		t.Fatal("expected removal to change the set")
	}
	if len(got) != 2 || got[0].ItemID != 1 || got[1].ItemID != 3 {
		t.Errorf("expected members [1 3] in order, got %v", got)
	}

	// Removing an absent member is a no-op.
	got, changed = applyRemove(got, Member{ItemType: "course", ItemID: 99})
	if changed {
		t.Error("removing an absent member must not report a change")
	}
	if len(got) != 2 {
		t.Errorf("expected 2 members, got %d", len(got))
	}
}
