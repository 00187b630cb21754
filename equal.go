package datadiff

import "reflect"

// Equal reports whether a and b are deeply equal. Scalars compare by value,
// numbers compare numerically regardless of go numeric kind, nil only equals
// nil, sequences compare element-wise & keyed records need identical key sets
// with equal values.
//
// OptionIgnoreArrayOrder makes sequence comparison order-insensitive at every
// depth: sequences are equal when each element of a can be paired with a
// distinct, equal element of b.
//
// Equal terminates on cyclic values: a pair of compound values that's
// already being compared higher up the recursion is considered equal
func Equal(a, b interface{}, opts ...Option) bool {
	cfg := newConfig(opts)
	return newEquality(cfg.IgnoreArrayOrder).equal(a, b)
}

type visit struct {
	a, b identity
}

type equality struct {
	ignoreOrder bool
	visited     map[visit]bool
}

func newEquality(ignoreOrder bool) *equality {
	return &equality{ignoreOrder: ignoreOrder}
}

func (e *equality) equal(a, b interface{}) bool {
	ta, tb := typeOf(a), typeOf(b)
	if ta != tb {
		return false
	}

	switch ta {
	case ntNull:
		return true
	case ntString:
		return stringOf(a) == stringOf(b)
	case ntBool:
		return boolOf(a) == boolOf(b)
	case ntNumber:
		na, _ := asNumber(a)
		nb, _ := asNumber(b)
		return na.equal(nb)
	case ntArray, ntObject:
		v, cyclic := e.enter(a, b)
		if cyclic {
			return true
		}
		defer e.leave(v)
		if ta == ntArray {
			return e.equalSequences(a, b)
		}
		return e.equalRecords(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// enter marks the pair a, b as under comparison, reporting true if the pair
// is already being compared further up the stack. pairs are released once
// compared: a failed comparison must not be remembered as a success when
// order-insensitive matching retries a candidate
func (e *equality) enter(a, b interface{}) (visit, bool) {
	ida, oka := identityOf(a)
	idb, okb := identityOf(b)
	if !oka || !okb {
		return visit{}, false
	}
	if e.visited == nil {
		e.visited = map[visit]bool{}
	}
	v := visit{ida, idb}
	if e.visited[v] {
		return v, true
	}
	e.visited[v] = true
	return v, false
}

func (e *equality) leave(v visit) {
	delete(e.visited, v)
}

func (e *equality) equalRecords(a, b interface{}) bool {
	ra, _ := asRecord(a)
	rb, _ := asRecord(b)
	if len(ra) != len(rb) {
		return false
	}
	for key, va := range ra {
		vb, ok := rb[key]
		if !ok || !e.equal(va, vb) {
			return false
		}
	}
	return true
}

func (e *equality) equalSequences(a, b interface{}) bool {
	sa, _ := asSequence(a)
	sb, _ := asSequence(b)
	if len(sa) != len(sb) {
		return false
	}
	if !e.ignoreOrder {
		for i := range sa {
			if !e.equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	}

	// multiset match: bucket b by canonical hash, then consume one equal
	// element per element of a. buckets are re-checked with equal so hash
	// collisions can't pair unequal values
	buckets := map[string][]int{}
	for i, el := range sb {
		key := canonicalHash(el, true)
		buckets[key] = append(buckets[key], i)
	}
	consumed := make([]bool, len(sb))
	for _, el := range sa {
		key := canonicalHash(el, true)
		found := false
		for _, j := range buckets[key] {
			if !consumed[j] && e.equal(el, sb[j]) {
				consumed[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func stringOf(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}

func boolOf(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return reflect.ValueOf(v).Bool()
}
