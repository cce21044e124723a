package models

import "testing"

func TestDisplayTitleUpperCasesOnly(t *testing.T) {
	p := Post{Title: "need yard help"}
	if p.DisplayTitle() != "NEED YARD HELP" {
		t.Fatalf("DisplayTitle: %q", p.DisplayTitle())
	}
	if p.Title != "need yard help" {
		t.Fatalf("stored title changed: %q", p.Title)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("enumerated category %q invalid", c)
		}
	}
	if Category("Gardening").Valid() {
		t.Fatalf("unknown category accepted")
	}
}

func TestTextSizeValid(t *testing.T) {
	for _, s := range TextSizes() {
		if !s.Valid() {
			t.Fatalf("enumerated size %q invalid", s)
		}
	}
	if TextSize("Huge").Valid() {
		t.Fatalf("unknown size accepted")
	}
}

func TestProfileSplitAndInitials(t *testing.T) {
	s := Session{Name: "Jane Doe", Email: "jane@example.com"}
	p := s.Profile()
	if p.FirstName != "Jane" || p.LastName != "Doe" || p.Email != "jane@example.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Initials() != "JD" {
		t.Fatalf("Initials: %q", p.Initials())
	}
	if p.DisplayName() != "Jane Doe" {
		t.Fatalf("DisplayName: %q", p.DisplayName())
	}

	one := Session{Name: "Cher"}.Profile()
	if one.FirstName != "Cher" || one.LastName != "" || one.DisplayName() != "Cher" {
		t.Fatalf("single-word name mishandled: %+v", one)
	}
	three := Session{Name: "Mary Jane Watson"}.Profile()
	if three.FirstName != "Mary" || three.LastName != "Jane Watson" {
		t.Fatalf("multiword surname mishandled: %+v", three)
	}
}

func TestPostCloneIsDeep(t *testing.T) {
	p := Post{Title: "t", NeedHelp: []string{"a"}, CanOffer: []string{"b"}}
	c := p.Clone()
	c.NeedHelp[0] = "mutated"
	if p.NeedHelp[0] != "a" {
		t.Fatalf("Clone shares slices")
	}
}
