package exactcover

import "github.com/kpitt/exactcover/internal/rowset"

// Matrix is the quadruply-linked sparse representation of one exact-cover
// instance. It is normally obtained indirectly via Coverings, but is
// exposed directly for ambient-stack consumers (solve statistics, a CLI
// progress banner) that want to inspect the built instance's shape without
// threading an Iterator through for that alone.
type Matrix[T comparable] struct {
	root *column[T]
	rows int
}

// ColumnCount returns the number of distinct elements across all of the
// subsets that produced m — the size of the exact-cover universe. It is
// O(active columns).
func (m *Matrix[T]) ColumnCount() int {
	return columnCount(m.root)
}

// Build constructs a matrix from subsets, in order. Each subset becomes one
// row: its elements are resolved against existing columns by value equality
// (creating a new column the first time an element is seen), and a data
// node is appended to the row for each element, left to right. A subset
// with no elements is silently dropped — it neither creates a column nor
// contributes a row, since an empty row would be a no-op cover/uncover
// pair that can never be part of a minimal exact cover. In the limit, zero
// subsets (or any number of only-empty subsets) builds a matrix with zero
// columns and zero rows, whose unique solution is the empty tuple: the
// empty cover of the empty universe.
//
// Build is all-or-nothing: if any subset fails (currently, only a repeated
// element within that subset), it returns a *BuildError identifying the
// offending subset and no partially built matrix.
func Build[T comparable](subsets []Subset[T]) (*Matrix[T], error) {
	root := newRoot[T]()
	rows := 0

	for i, s := range subsets {
		if len(s.Elements) == 0 {
			continue
		}

		seen := rowset.New[T](len(s.Elements))
		var rowHead *node[T]
		for _, elem := range s.Elements {
			if seen.Contains(elem) {
				return nil, &BuildError{Index: i, Kind: ErrDuplicateElement, Err: ErrDuplicateElement}
			}
			seen.Add(elem)

			col := findOrCreateColumn(root, elem)
			rowHead = appendNode(col, rowHead, s.Tag)
		}
		rows++
	}

	return &Matrix[T]{root: root, rows: rows}, nil
}
