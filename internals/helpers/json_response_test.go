package helper

import "testing"

func TestBuildPaginationFromPage_Basic(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	if p.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", p.TotalPages)
	}
	if !p.HasNext {
		t.Error("expected has_next on page 2 of 3")
	}
	if !p.HasPrev {
		t.Error("expected has_prev on page 2 of 3")
	}
}

func TestBuildPaginationFromPage_EmptyResult(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)

	if p.TotalPages != 1 {
		t.Errorf("expected 1 total page for empty set, got %d", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Error("expected no next/prev for empty set")
	}
}

func TestBuildPaginationFromPage_Defaults(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)

	if p.Page != 1 {
		t.Errorf("expected page normalized to 1, got %d", p.Page)
	}
	if p.PerPage != 20 {
		t.Errorf("expected per_page defaulted to 20, got %d", p.PerPage)
	}
}
