package txgraph

import (
	"errors"
	"strings"
	"testing"
)

// TestParseEdges_Basic checks parsing of a plain edge list: order is
// preserved and maxima are tracked.
func TestParseEdges_Basic(t *testing.T) {
	in := "0 0\n1 0\n1 1\n2 1\n2 2\n"
	el, err := ParseEdges(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseEdges failed: %v", err)
	}
	if el.Len() != 5 {
		t.Fatalf("got %d edges; want 5", el.Len())
	}
	if el.MaxKI != 2 || el.MaxPK != 2 {
		t.Errorf("maxima = (%d, %d); want (2, 2)", el.MaxKI, el.MaxPK)
	}
	if el.KIs[3] != 2 || el.PKs[3] != 1 {
		t.Errorf("edge 3 = (%d, %d); want (2, 1)", el.KIs[3], el.PKs[3])
	}
}

// TestParseEdges_TrailingTokensAndBlanks checks that tokens after the
// second field and blank lines are tolerated.
func TestParseEdges_TrailingTokensAndBlanks(t *testing.T) {
	in := "0 0 extra tokens here\n\n1 1\n\n\n"
	el, err := ParseEdges(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseEdges failed: %v", err)
	}
	if el.Len() != 2 {
		t.Fatalf("got %d edges; want 2", el.Len())
	}
}

// TestParseEdges_Duplicates checks that duplicate lines stay duplicated
// in the edge list but collapse in the ring sets.
func TestParseEdges_Duplicates(t *testing.T) {
	in := "0 0\n0 0\n0 1\n"
	el, err := ParseEdges(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseEdges failed: %v", err)
	}
	if el.Len() != 3 {
		t.Fatalf("got %d edges; want 3 (duplicates preserved)", el.Len())
	}

	g := NewGraph(el)
	if len(g.Rings[0]) != 2 {
		t.Errorf("ring 0 size = %d; want 2 (set semantics)", len(g.Rings[0]))
	}
	if len(g.PkToKi[0]) != 2 {
		t.Errorf("pk 0 reverse list length = %d; want 2 (list semantics)", len(g.PkToKi[0]))
	}
}

// TestParseEdges_Malformed checks the error cases.
func TestParseEdges_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"single field", "0\n"},
		{"non-numeric ki", "x 0\n"},
		{"non-numeric pk", "0 x\n"},
		{"negative index", "-1 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseEdges(strings.NewReader(tc.in)); !errors.Is(err, ErrMalformedEdge) {
				t.Errorf("got %v; want ErrMalformedEdge", err)
			}
		})
	}
}

// TestReadEdges_MissingFile checks that unreadable files surface an
// I/O error, not a format error.
func TestReadEdges_MissingFile(t *testing.T) {
	_, err := ReadEdges("no/such/file")
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if errors.Is(err, ErrMalformedEdge) {
		t.Errorf("got ErrMalformedEdge; want wrapped I/O error")
	}
}
