/*
Package exactcover implements Knuth's Dancing Links (DLX) algorithm for the
exact cover problem.

Given a universe U implied by a collection of subsets of U, an exact cover is
a subcollection of those subsets that is pairwise disjoint and whose union is
U. Finding one is NP-complete in general, but Dancing Links makes the
backtracking search fast in practice by representing the problem as a sparse
matrix of quadruply-linked circular lists: removing a column and the rows
that intersect it ("covering") and putting them back ("uncovering") are both
O(1) per node touched, which makes the search's backtracking step nearly
free.

Construct a matrix from a slice of [Subset] values with [Coverings], then
drain solutions with [Iterator.Next]:

	it, err := exactcover.Coverings([]exactcover.Subset[int]{
		exactcover.NewSubset(1, 4, 7),
		exactcover.NewSubset(1, 4),
		exactcover.NewSubset(4, 5, 7),
		exactcover.NewSubset(3, 5, 6),
		exactcover.NewSubset(2, 3, 6, 7),
		exactcover.NewSubset(2, 7),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer it.Close()

	for tags, ok := it.Next(); ok; tags, ok = it.Next() {
		fmt.Println(tags)
	}

The search, the column-selection heuristic (minimum remaining values, i.e.
always branch on the column with the fewest remaining candidate rows), and
the row-append tie-breaking order are all derived mechanically from the input
order, so results are reproducible. Building subset collections for concrete
puzzles (Sudoku, N-queens, polyomino tiling, exact-cover-based scheduling) is
left to callers; this package is the general-purpose solving engine.
*/
package exactcover
