package txgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Graph is the live attack state: one ring set per key image plus the
// pk→ki reverse map.
//
// PkToKi is computed once at construction and is NOT kept in sync as
// rings shrink; it is an upper bound on which key images ever contained
// a given public key. Walkers must re-check Rings[ki].Has(pk) when they
// need live membership.
type Graph struct {
	Rings  []Ring  // by key image index
	PkToKi [][]int // by public key index; may hold duplicates
	NumPK  int
}

// NumKI returns the number of key images.
func (g *Graph) NumKI() int { return len(g.Rings) }

// NewGraph builds a Graph from an edge list. Duplicate edges collapse
// to one ring membership; PkToKi keeps every occurrence (list semantics).
func NewGraph(el *EdgeList) *Graph {
	g := &Graph{
		Rings:  make([]Ring, el.NumKI()),
		PkToKi: make([][]int, el.NumPK()),
		NumPK:  el.NumPK(),
	}
	for ki := range g.Rings {
		g.Rings[ki] = make(Ring)
	}
	for i := 0; i < el.Len(); i++ {
		ki, pk := el.KIs[i], el.PKs[i]
		g.Rings[ki][pk] = struct{}{}
		g.PkToKi[pk] = append(g.PkToKi[pk], ki)
	}
	return g
}

// RingSizes returns the current size of every ring, indexed by key image.
func (g *Graph) RingSizes() []int {
	sizes := make([]int, len(g.Rings))
	for ki, ring := range g.Rings {
		sizes[ki] = len(ring)
	}
	return sizes
}

// Traceable counts the rings currently of size one.
func (g *Graph) Traceable() int {
	n := 0
	for _, ring := range g.Rings {
		if len(ring) == 1 {
			n++
		}
	}
	return n
}

// ReadRings parses a ring file.
//
// The first line carries the number of key images and the number of
// distinct public keys, separated by a single space. Each subsequent
// line begins with a key image index followed by the indices of the
// public keys in its ring. A line with only the key image index denotes
// an empty ring. Exactly one line per key image, ascending from zero.
func ReadRings(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("txgraph: open ring file: %w", err)
	}
	defer f.Close()

	g, err := ParseRings(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return g, nil
}

// ParseRings reads the ring file format from r. See ReadRings.
func ParseRings(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("txgraph: read rings: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header line", ErrMalformedRing)
	}
	header := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has %d fields, want 2", ErrMalformedRing, len(header))
	}
	numKI, err := strconv.Atoi(header[0])
	if err != nil || numKI < 0 {
		return nil, fmt.Errorf("%w: bad key image count %q", ErrMalformedRing, header[0])
	}
	numPK, err := strconv.Atoi(header[1])
	if err != nil || numPK < 0 {
		return nil, fmt.Errorf("%w: bad public key count %q", ErrMalformedRing, header[1])
	}

	g := &Graph{
		Rings:  make([]Ring, numKI),
		PkToKi: make([][]int, numPK),
		NumPK:  numPK,
	}
	for ki := range g.Rings {
		g.Rings[ki] = make(Ring)
	}

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		ki, err := strconv.Atoi(fields[0])
		if err != nil || ki < 0 || ki >= numKI {
			return nil, fmt.Errorf("%w: line %d: bad key image index %q", ErrMalformedRing, lineNo, fields[0])
		}
		for _, tok := range fields[1:] {
			pk, err := strconv.Atoi(tok)
			if err != nil || pk < 0 || pk >= numPK {
				return nil, fmt.Errorf("%w: line %d: bad public key index %q", ErrMalformedRing, lineNo, tok)
			}
			g.Rings[ki][pk] = struct{}{}
			g.PkToKi[pk] = append(g.PkToKi[pk], ki)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("txgraph: read rings: %w", err)
	}
	return g, nil
}

// WriteRings writes the ring file format to path: header line with the
// key image and public key counts, then one line per key image in
// ascending order. Public keys within a line are emitted in ascending
// order so that identical states diff cleanly.
func (g *Graph) WriteRings(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("txgraph: create ring file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := g.writeRings(w); err != nil {
		return fmt.Errorf("txgraph: write ring file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("txgraph: write ring file %s: %w", path, err)
	}
	return nil
}

func (g *Graph) writeRings(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", len(g.Rings), g.NumPK); err != nil {
		return err
	}
	for ki, ring := range g.Rings {
		if _, err := fmt.Fprintf(w, "%d", ki); err != nil {
			return err
		}
		for _, pk := range ring.Members() {
			if _, err := fmt.Fprintf(w, " %d", pk); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
