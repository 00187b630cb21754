package datadiff

// editOp classifies a step in an edit script
type editOp uint8

const (
	opEqual  editOp = iota // element is unchanged between a and b
	opInsert               // element was inserted (present in b only)
	opDelete               // element was deleted (present in a only)
)

// edit is a single operation in an edit script produced by myers. ai indexes
// into a for equal & delete operations, bi indexes into b for equal & insert
// operations, the unused index is -1
type edit struct {
	op     editOp
	ai, bi int
}

// myers computes the shortest edit script turning a sequence of length n
// into one of length m, where eq reports whether a[i] equals b[j].
//
// The algorithm runs in O((N+M)*D) time where N and M are the lengths of a
// and b, and D is the size of the minimum edit script. When two paths reach
// equally far, the down move (an insertion) wins
func myers(n, m int, eq func(i, j int) bool) []edit {
	// Handle trivial cases.
	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		ops := make([]edit, m)
		for j := range ops {
			ops[j] = edit{op: opInsert, ai: -1, bi: j}
		}
		return ops
	}
	if m == 0 {
		ops := make([]edit, n)
		for i := range ops {
			ops[i] = edit{op: opDelete, ai: i, bi: -1}
		}
		return ops
	}

	max := n + m
	// v[k+max] is the furthest x reached on diagonal k
	v := make([]int, 2*max+2)

	// trace[d] holds v for diagonals -d..d after step d, indexed k+d
	var trace [][]int

	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + max
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1] // move down (insert)
			} else {
				x = v[idx-1] + 1 // move right (delete)
			}
			y := x - k

			// Follow diagonal (equal elements).
			for x < n && y < m && eq(x, y) {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				trace = append(trace, snapshot(v, max, d))
				return backtrack(trace, n, m)
			}
		}
		trace = append(trace, snapshot(v, max, d))
	}

	// unreachable: d == n+m always reaches the end
	return nil
}

// snapshot copies the frontier for diagonals -d..d
func snapshot(v []int, max, d int) []int {
	snap := make([]int, 2*d+1)
	copy(snap, v[max-d:max+d+1])
	return snap
}

// backtrack reconstructs the edit script from the trace of frontiers,
// walking from (n, m) back to the origin
func backtrack(trace [][]int, n, m int) []edit {
	x, y := n, m

	// Build the edit script in reverse.
	var ops []edit

	for d := len(trace) - 1; d > 0; d-- {
		k := x - y
		prev := trace[d-1]
		at := func(k int) int { return prev[k+d-1] }

		var prevK int
		if k == -d || (k != d && at(k-1) < at(k+1)) {
			prevK = k + 1 // came from an insert (down move)
		} else {
			prevK = k - 1 // came from a delete (right move)
		}

		prevX := at(prevK)
		prevY := prevX - prevK

		// Trace back along the diagonal (equal elements).
		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, edit{op: opEqual, ai: x, bi: y})
		}

		if prevK == k-1 {
			x--
			ops = append(ops, edit{op: opDelete, ai: x, bi: -1})
		} else {
			y--
			ops = append(ops, edit{op: opInsert, ai: -1, bi: y})
		}
	}

	// Remaining diagonal at d=0.
	for x > 0 && y > 0 {
		x--
		y--
		ops = append(ops, edit{op: opEqual, ai: x, bi: y})
	}

	// Reverse to get forward order.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}
