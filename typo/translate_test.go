package typo

import (
	"testing"
)

func enzymeStrings(enzymes []Enzyme) []string {
	ret := make([]string, len(enzymes))
	for i, e := range enzymes {
		ret[i] = e.String()
	}
	return ret
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		strand string
		want   []string
	}{
		{"ACA", []string{"cut"}},
		{"CG", []string{"cop"}},
		{"A", nil},
		{"", nil},
		{"AAAAAA", nil},
		{"AAACAAAAAG", []string{"cut", "del"}},
		{"TAGATCCAGTCCACATCGA", []string{"rpy-ina-rpu-mvr-int-mvl-cut-swi-cop"}},
		{"CAAAGAGAATCCTCTTTGAT", []string{"mvr", "ina-ina-swi-mvl-rpu-lpu-lpy-swi"}},
		{"CATAAGTACCAG", []string{"mvr-rpy-del-rpy-mvl-del"}},
	}
	for _, c := range cases {
		got := enzymeStrings(Translate(MustParseStrand(c.strand)))
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v", c.strand, got)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%s: got %v", c.strand, got)
			}
		}
	}
}

func TestTranslateDuplet(t *testing.T) {
	want := [4][4]string{
		{"", "cut", "del", "swi"},
		{"mvr", "mvl", "cop", "off"},
		{"ina", "inc", "ing", "int"},
		{"rpy", "rpu", "lpy", "lpu"},
	}
	for i, first := range AllBases() {
		for j, second := range AllBases() {
			a, ok := TranslateDuplet(Duplet{first, second})
			if want[i][j] == "" {
				if ok {
					t.Fatalf("%v%v: got %v", first, second, a)
				}
				continue
			}
			if !ok || a.String() != want[i][j] {
				t.Fatalf("%v%v: got %v", first, second, a)
			}
		}
	}
}

func TestTranslateDoesNotShareBuffers(t *testing.T) {
	enzymes := Translate(MustParseStrand("ACAGAAATAT"))
	if len(enzymes) != 2 {
		t.Fatalf("got %v", enzymeStrings(enzymes))
	}
	if enzymes[0].String() != "cut-del" || enzymes[1].String() != "swi-swi" {
		t.Fatalf("got %v", enzymeStrings(enzymes))
	}
}
