package matching

import "github.com/katalvlaran/ringtrace/txgraph"

// Maximum computes a maximum matching on m and returns the row mates:
// entry r is the key image column matched to public key row r, or
// txgraph.None when row r is unmatched. Every column that can be
// matched is matched; maximality is what the closed-set decomposition
// and the DM square block rely on.
func Maximum(m *txgraph.Matrix) []int {
	numRows, numCols := m.NumRows, m.NumCols

	rowMates := make([]int, numRows)
	for r := range rowMates {
		rowMates[r] = txgraph.None
	}

	// DFS state, reused across columns. colStack holds the alternating
	// path's columns; rowAtDepth[d] is the row chosen at depth d.
	colStack := make([]int, numCols)
	rowAtDepth := make([]int, numCols)
	nextEdge := make([]int, numCols)

	// visited[c] == cur marks column c as seen by the current search.
	visited := make([]int, numCols)
	for c := range visited {
		visited[c] = txgraph.None
	}

	// Persistent cheap-scan cursor per column: everything before it
	// leads only into matched rows, in every future search.
	cursor := append([]int(nil), m.ColPtr[:numCols]...)

	for cur := 0; cur < numCols; cur++ {
		colStack[0] = cur
		found := false
		head := 0

		for head >= 0 {
			col := colStack[head]
			end := m.ColPtr[col+1]

			if visited[col] != cur {
				visited[col] = cur

				// Cheap scan: any unmatched row left for this column?
				p := cursor[col]
				row := txgraph.None
				for p < end && !found {
					row = m.RowIdx[p]
					found = rowMates[row] == txgraph.None
					p++
				}
				cursor[col] = p
				if found {
					rowAtDepth[head] = row
					break
				}
				nextEdge[head] = m.ColPtr[col]
			}

			// Deep scan: follow a matched row into its mate column.
			// Every row reached here is matched - the cheap scan above
			// exhausted this column's unmatched rows.
			p := nextEdge[head]
			for p < end {
				row := m.RowIdx[p]
				if visited[rowMates[row]] == cur {
					p++
					continue
				}
				nextEdge[head] = p + 1
				rowAtDepth[head] = row
				head++
				colStack[head] = rowMates[row]
				break
			}
			if p == end {
				head--
			}
		}

		if found {
			// Unwind the stack, flipping every edge on the path.
			for p := head; p >= 0; p-- {
				rowMates[rowAtDepth[p]] = colStack[p]
			}
		}
	}
	return rowMates
}

// ColMates inverts a row-mates slice: entry c is the public key row
// matched to key image column c, or txgraph.None.
func ColMates(rowMates []int, numCols int) []int {
	colMates := make([]int, numCols)
	for c := range colMates {
		colMates[c] = txgraph.None
	}
	for r, c := range rowMates {
		if c != txgraph.None {
			colMates[c] = r
		}
	}
	return colMates
}
