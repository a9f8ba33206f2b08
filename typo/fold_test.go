package typo

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		enzyme    string
		interior  Orientation
		countEnds Orientation
	}{
		{"cut", Right, Right},
		{"cop", Right, Down},
		{"off-off", Right, Left},
		{"cut-swi-cut", Down, Down},
		{"cut-off-cut", Up, Up},
		{"swi-swi-swi-swi-swi-swi", Right, Left},
		{"cut-off-off-cut", Left, Left},
		{"rpy-ina-rpu-mvr-int-mvl-cut-swi-cop", Up, Down},
	}
	for _, c := range cases {
		e := MustParseEnzyme(c.enzyme)
		if got := Fold(e); got != c.interior {
			t.Fatalf("%s: got %v", c.enzyme, got)
		}
		if got := (Folder{CountEnds: true}).Fold(e); got != c.countEnds {
			t.Fatalf("%s counting ends: got %v", c.enzyme, got)
		}
	}
}

func TestBindingSite(t *testing.T) {
	cut := MustParseEnzyme("cut")
	if i, ok := BindingSite(cut, MustParseStrand("CCAA")); !ok || i != 2 {
		t.Fatalf("got %d %v", i, ok)
	}
	if _, ok := BindingSite(cut, MustParseStrand("CGT")); ok {
		t.Fatal()
	}
	if _, ok := BindingSite(cut, MustParseStrand("")); ok {
		t.Fatal()
	}
	up := MustParseEnzyme("cut-off-cut")
	if i, ok := BindingSite(up, MustParseStrand("AGCTC")); !ok || i != 2 {
		t.Fatalf("got %d %v", i, ok)
	}
}
