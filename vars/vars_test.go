package vars

import "testing"

func TestFirstOr(t *testing.T) {
	none := func() (int, bool) {
		return 0, false
	}
	zero := func() (int, bool) {
		return 0, true
	}
	three := func() (int, bool) {
		return 3, true
	}
	if v := FirstOr(42, none, three, zero); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstOr(42, none, zero, three); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := FirstOr(42, none); v != 42 {
		t.Fatalf("got %v", v)
	}
	if v := FirstOr(42); v != 42 {
		t.Fatalf("got %v", v)
	}
}

func TestParseBool(t *testing.T) {
	for _, str := range []string{"true", "Y", " on ", "1"} {
		if v, ok := ParseBool(str); !v || !ok {
			t.Fatalf("%q: got %v %v", str, v, ok)
		}
	}
	for _, str := range []string{"false", "No", "off", "0"} {
		if v, ok := ParseBool(str); v || !ok {
			t.Fatalf("%q: got %v %v", str, v, ok)
		}
	}
	if _, ok := ParseBool("maybe"); ok {
		t.Fatal()
	}
}
