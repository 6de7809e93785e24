package pagination

import (
	"reflect"
	"testing"
)

func TestPaginateSpecExample(t *testing.T) {
	// 97 items, page 0, size 10: items 1-10 and a strip containing page 0
	// and the final page with an ellipsis between.
	p := Paginate(97, 0, 10)

	if p.Start != 0 || p.End != 10 {
		t.Fatalf("bounds = [%d,%d), want [0,10)", p.Start, p.End)
	}
	if p.TotalPages != 10 {
		t.Fatalf("total pages = %d, want 10", p.TotalPages)
	}
	if want := []int{0, 1, 2, 3, Ellipsis, 9}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	p := Paginate(97, 9, 10)
	if p.Start != 90 || p.End != 97 {
		t.Fatalf("bounds = [%d,%d), want [90,97)", p.Start, p.End)
	}
	if want := []int{0, Ellipsis, 6, 7, 8, 9}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
}

func TestPaginateMiddleWindow(t *testing.T) {
	p := Paginate(100, 5, 10)
	if want := []int{0, Ellipsis, 4, 5, 6, Ellipsis, 9}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
}

func TestPaginateNoRedundantEllipsisNearEdges(t *testing.T) {
	// current=2: window 1-3 touches the first page, so no leading ellipsis.
	p := Paginate(70, 2, 10)
	if want := []int{0, 1, 2, 3, Ellipsis, 6}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
	// current=4 of 0..6: window 3-5 touches the last page, no trailing ellipsis.
	p = Paginate(70, 4, 10)
	if want := []int{0, Ellipsis, 3, 4, 5, 6}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
}

func TestPaginateFewPagesShowsAll(t *testing.T) {
	p := Paginate(42, 1, 10)
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(p.Numbers, want) {
		t.Fatalf("numbers = %v, want %v", p.Numbers, want)
	}
}

func TestPaginateClampsAndDefaults(t *testing.T) {
	p := Paginate(30, 99, 10)
	if p.Current != 2 || p.Start != 20 || p.End != 30 {
		t.Fatalf("clamped page = %+v", p)
	}
	p = Paginate(30, -5, 10)
	if p.Current != 0 {
		t.Fatalf("negative page not clamped: %+v", p)
	}
	p = Paginate(30, 0, 0)
	if p.PageSize != 10 {
		t.Fatalf("size default = %d, want 10", p.PageSize)
	}
	p = Paginate(0, 0, 10)
	if p.TotalPages != 0 || len(p.Numbers) != 0 || p.Start != 0 || p.End != 0 {
		t.Fatalf("empty list page = %+v", p)
	}
}
