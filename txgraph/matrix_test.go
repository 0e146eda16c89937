package txgraph

import (
	"reflect"
	"strings"
	"testing"
)

func edgesFor(t *testing.T, text string) *EdgeList {
	t.Helper()
	el, err := ParseEdges(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseEdges failed: %v", err)
	}
	return el
}

// TestNewMatrix_Views checks that the CSC and CSR views agree and come
// out sorted.
func TestNewMatrix_Views(t *testing.T) {
	m := NewMatrix(edgesFor(t, "0 1\n0 0\n1 1\n1 2\n"))
	if m.NumRows != 3 || m.NumCols != 2 {
		t.Fatalf("dims = (%d, %d); want (3, 2)", m.NumRows, m.NumCols)
	}
	if got := m.ColRows(0); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("ColRows(0) = %v; want [0 1]", got)
	}
	if got := m.ColRows(1); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ColRows(1) = %v; want [1 2]", got)
	}
	if got := m.RowCols(1); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("RowCols(1) = %v; want [0 1]", got)
	}
	if got := m.RowCols(0); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("RowCols(0) = %v; want [0]", got)
	}
}

// TestNewMatrix_DuplicateEdges checks that duplicate edges collapse to
// a single entry in both views.
func TestNewMatrix_DuplicateEdges(t *testing.T) {
	m := NewMatrix(edgesFor(t, "0 0\n0 0\n0 1\n"))
	if m.NNZ() != 2 {
		t.Fatalf("nnz = %d; want 2", m.NNZ())
	}
	if got := m.ColRows(0); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("ColRows(0) = %v; want [0 1]", got)
	}
}

// TestNewMatrix_EmptyColumn checks a key image index gap: the column
// exists with no rows.
func TestNewMatrix_EmptyColumn(t *testing.T) {
	m := NewMatrix(edgesFor(t, "0 0\n2 1\n"))
	if m.NumCols != 3 {
		t.Fatalf("cols = %d; want 3", m.NumCols)
	}
	if got := m.ColRows(1); len(got) != 0 {
		t.Errorf("ColRows(1) = %v; want empty", got)
	}
}
