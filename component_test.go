package signet

import "testing"

func TestMaskHelpers(t *testing.T) {
	m := MaskOf(1, 4, 16)

	if m != 21 {
		t.Fatalf("MaskOf(1, 4, 16) = %d, want 21", m)
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
	sigs := m.Signatures()
	if len(sigs) != 3 || sigs[0] != 1 || sigs[1] != 4 || sigs[2] != 16 {
		t.Errorf("Signatures() = %v, want [1 4 16]", sigs)
	}
	if got := Union(Mask(1), Mask(4), Mask(4)); got != 5 {
		t.Errorf("Union() = %d, want 5", got)
	}
	if m.String() != "{1|4|16}" || Mask(0).String() != "{}" {
		t.Errorf("String() = %s / %s", m.String(), Mask(0).String())
	}
}

func TestMaskContainment(t *testing.T) {
	tests := []struct {
		name           string
		m, o           Mask
		wantAll        bool
		wantIntersects bool
	}{
		{"Subset", 7, 5, true, true},
		{"Overlap", 3, 6, false, true},
		{"Disjoint", 3, 12, false, false},
		{"Empty requirement", 3, 0, true, false},
		{"Empty both", 0, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ContainsAll(tt.o); got != tt.wantAll {
				t.Errorf("%v.ContainsAll(%v) = %v, want %v", tt.m, tt.o, got, tt.wantAll)
			}
			if got := tt.m.Intersects(tt.o); got != tt.wantIntersects {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.m, tt.o, got, tt.wantIntersects)
			}
		})
	}
}

func TestSignatureValid(t *testing.T) {
	for _, sig := range []Signature{1, 2, 1 << 40, 1 << 63} {
		if !sig.Valid() {
			t.Errorf("Valid(%d) = false", sig)
		}
	}
	for _, sig := range []Signature{0, 3, 12, 1<<63 | 1} {
		if sig.Valid() {
			t.Errorf("Valid(%d) = true", sig)
		}
	}
}
