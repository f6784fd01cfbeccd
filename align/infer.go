package align

// Infer builds the alignment between original and modified with the
// lowest edit distance, using the default cost model: substitution cost
// 0 when two elements are equal (else 1), insertion/deletion cost 1.
//
// This operation has time complexity O(N*M), where N and M are the
// lengths of original and modified, so it should only be used for
// relatively short sequences.
func Infer[T comparable](original, modified []T) Alignment {
	return InferWithCosts(original, modified, func(e Edit[T, T]) int {
		if e.Kind != EditReplacement {
			return 1
		}
		if e.Original == e.Modified {
			return 0
		}
		return 1
	})
}

// InferWithCosts builds the alignment between original and modified that
// minimizes the total cost under costFn, via Hirschberg's linear-space
// divide-and-conquer algorithm, falling back to the full-matrix
// Needleman-Wunsch/Wagner-Fischer DP for its base cases.
//
// This operation has time complexity O(N*M) and working memory
// O(min(N, M)), aside from the O(N*M) memory of whichever base case the
// recursion bottoms out on.
func InferWithCosts[T, U any, N Cost](original []T, modified []U, costFn func(Edit[T, U]) N) Alignment {
	if len(original) < len(modified) {
		// Keep memory consumption bounded by the smaller of the two
		// sequences: solve the inverted problem and invert the result.
		inverted := func(e Edit[U, T]) N { return costFn(e.Inverse()) }
		return inferRecursive(modified, original, inverted).Inverse()
	}
	return inferRecursive(original, modified, costFn)
}

// inferRecursive is Hirschberg's algorithm: split original in half,
// compute the forward DP's last row over the left half and the reverse
// DP's last row over the right half, pick the split of modified that
// minimizes their sum, and recurse on each side.
func inferRecursive[T, U any, N Cost](original []T, modified []U, costFn func(Edit[T, U]) N) Alignment {
	if len(original) <= 1 || len(modified) <= 1 {
		return inferMatrix(original, modified, costFn)
	}

	omid := len(original) / 2
	oleft, oright := original[:omid], original[omid:]

	lcosts := inferCosts(oleft, modified, false, costFn)
	rcosts := inferCosts(oright, modified, true, costFn)

	mmid := 0
	min := lcosts[0] + rcosts[0]
	for i := 1; i < len(lcosts); i++ {
		if cost := lcosts[i] + rcosts[i]; cost < min {
			mmid, min = i, cost
		}
	}
	mleft, mright := modified[:mmid], modified[mmid:]

	left := inferRecursive(oleft, mleft, costFn)
	right := inferRecursive(oright, mright, costFn)
	_ = left.Extend(right.Shifted(omid, mmid).Pairs())
	return left
}

// indexAt reads seq[i], or seq[len(seq)-i-1] when reverse is set; shared
// by inferCosts so the same loop body can run a sequence forwards (for
// the left-half forward DP) or backwards (for the right-half reverse DP).
func indexAt[T any](seq []T, i int, reverse bool) T {
	if reverse {
		return seq[len(seq)-i-1]
	}
	return seq[i]
}

// inferCosts runs the Needleman-Wunsch/Wagner-Fischer recurrence keeping
// only the final row of costs, in O(min(N,M)) memory via a two-row
// rolling buffer. Hirschberg's algorithm uses this as a subroutine; it
// never reconstructs an alignment itself.
func inferCosts[T, U any, N Cost](original []T, modified []U, reverse bool, costFn func(Edit[T, U]) N) []N {
	mlen := len(modified)

	row := make([]N, mlen+1)
	for j := 0; j < mlen; j++ {
		m := indexAt(modified, j, reverse)
		row[j+1] = row[j] + costFn(Insertion[T, U](m))
	}

	prev := make([]N, mlen+1)

	for i := 0; i < len(original); i++ {
		row, prev = prev, row

		o := indexAt(original, i, reverse)
		row[0] = prev[0] + costFn(Deletion[T, U](o))

		for j := 0; j < mlen; j++ {
			m := indexAt(modified, j, reverse)

			subCost := prev[j] + costFn(Replacement(o, m))
			delCost := prev[j+1] + costFn(Deletion[T, U](o))
			insCost := row[j] + costFn(Insertion[T, U](m))

			minCost := subCost
			if delCost < minCost {
				minCost = delCost
			}
			if insCost < minCost {
				minCost = insCost
			}
			row[j+1] = minCost
		}
	}

	if reverse {
		for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}
	return row
}

// matrixCell is one entry of the full DP matrix: the cost to align the
// prefixes ending here, plus the back-pointer to the predecessor cell
// that achieved it.
type matrixCell[N Cost] struct {
	cost  N
	fromI int
	fromJ int
}

// inferMatrix is the Needleman-Wunsch/Wagner-Fischer algorithm, using
// the entire O(N*M) matrix with back-pointers to reconstruct the optimal
// alignment. Hirschberg's algorithm uses this only for its base cases
// (one side of length <= 1), keeping overall memory to O(min(N, M)).
//
// The tie-break order when a cell has more than one minimizing
// predecessor favors diagonal (replacement), then deletion, then
// insertion, matching the order the candidates are compared below; this
// keeps inferred alignments deterministic.
func inferMatrix[T, U any, N Cost](original []T, modified []U, costFn func(Edit[T, U]) N) Alignment {
	rows := len(original) + 1
	cols := len(modified) + 1

	matrix := make([][]matrixCell[N], rows)
	for i := range matrix {
		matrix[i] = make([]matrixCell[N], cols)
	}

	for j := 1; j < cols; j++ {
		m := modified[j-1]
		matrix[0][j] = matrixCell[N]{
			cost:  matrix[0][j-1].cost + costFn(Insertion[T, U](m)),
			fromI: 0,
			fromJ: j - 1,
		}
	}

	for i := 1; i < rows; i++ {
		o := original[i-1]
		matrix[i][0] = matrixCell[N]{
			cost:  matrix[i-1][0].cost + costFn(Deletion[T, U](o)),
			fromI: i - 1,
			fromJ: 0,
		}

		for j := 1; j < cols; j++ {
			m := modified[j-1]

			cost := matrix[i-1][j-1].cost + costFn(Replacement(o, m))
			fromI, fromJ := i-1, j-1

			if delCost := matrix[i-1][j].cost + costFn(Deletion[T, U](o)); delCost < cost {
				cost, fromI, fromJ = delCost, i-1, j
			}
			if insCost := matrix[i][j-1].cost + costFn(Insertion[T, U](m)); insCost < cost {
				cost, fromI, fromJ = insCost, i, j-1
			}

			matrix[i][j] = matrixCell[N]{cost: cost, fromI: fromI, fromJ: fromJ}
		}
	}

	// Walk the back-pointers from (rows-1, cols-1) to (0, 0), then
	// reverse, to recover the alignment in forward order.
	pairs := make([]Pair, 0, rows+cols)
	i, j := rows-1, cols-1
	for {
		pairs = append(pairs, Pair{O: i, M: j})
		if i == 0 && j == 0 {
			break
		}
		c := matrix[i][j]
		i, j = c.fromI, c.fromJ
	}

	a := New()
	for k := len(pairs) - 1; k >= 0; k-- {
		// Safe to ignore: back-pointer walks never move a coordinate
		// backwards once reversed, by construction of the DP.
		_ = a.Push(pairs[k].O, pairs[k].M)
	}
	return a
}
