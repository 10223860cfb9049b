package core

import "testing"

func TestPickerFiltersAndRanks(t *testing.T) {
	p := NewPicker("commands", []PickerItem{
		{ID: "find", Label: "Find"},
		{ID: "reload", Label: "Reload toolbar"},
		{ID: "redo", Label: "Redo"},
	})
	p.SetQuery("re")
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("filtered = %+v, want 2 items", items)
	}
	if items[0].ID != "reload" && items[0].ID != "redo" {
		t.Fatalf("unexpected first item %q", items[0].ID)
	}
	p.SetQuery("redo")
	if cur, ok := p.Current(); !ok || cur.ID != "redo" {
		t.Fatalf("current = %+v, want redo", cur)
	}
}

func TestPickerMoveWraps(t *testing.T) {
	p := NewPicker("x", []PickerItem{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}})
	p.Move(-1)
	if p.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", p.Cursor())
	}
	p.Move(1)
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", p.Cursor())
	}
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker("x", nil)
	p.Move(1)
	if _, ok := p.Current(); ok {
		t.Fatalf("expected no current item")
	}
	p.SetItems([]PickerItem{{ID: "a", Label: "Alpha"}})
	p.SetQuery("zz")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no match")
	}
}
