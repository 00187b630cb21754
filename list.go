package datadiff

// ListEntry describes what happened to a single list element. Indexes are nil
// when the element doesn't exist on that side. IndexDelta is only set when
// both sides hold equal values
type ListEntry[T any] struct {
	Value         T      `json:"value"`
	PreviousIndex *int   `json:"previousIndex"`
	CurrentIndex  *int   `json:"currentIndex"`
	IndexDelta    *int   `json:"indexDelta"`
	Status        Status `json:"status"`
}

// ListDiff is the result of comparing two lists
type ListDiff[T any] struct {
	Type   DiffType        `json:"type"`
	Status Status          `json:"status"`
	Diff   []*ListEntry[T] `json:"diff"`
}

// DiffType implements the Result interface
func (d *ListDiff[T]) DiffType() DiffType { return d.Type }

// DiffStatus implements the Result interface
func (d *ListDiff[T]) DiffStatus() Status { return d.Status }

// DiffList aligns two ordered sequences, classifying every element as equal,
// moved, updated, added or deleted.
//
// Each element of current is matched against the first not-yet-matched
// element of previous that's equal to it, scanning previous left to right, so
// duplicate values pair up in order. When OptionReferenceKey is set, keyed
// record elements carrying that key are matched on the key's value instead
// and reported as updated if the rest of the record changed.
//
// nil or empty inputs are valid: comparing against an empty list reports
// every element of the other side as added or deleted
func DiffList[T any](previous, current []T, opts ...Option) *ListDiff[T] {
	cfg := newConfig(opts)
	ld := &listDiffer[T]{
		cfg: cfg,
		eq:  newEquality(cfg.IgnoreArrayOrder),
	}
	return ld.diff(previous, current)
}

type listDiffer[T any] struct {
	cfg *Config
	eq  *equality
}

func (ld *listDiffer[T]) diff(previous, current []T) *ListDiff[T] {
	var entries []*ListEntry[T]
	switch {
	case len(previous) == 0 && len(current) == 0:
	case len(previous) == 0:
		entries = singleSideEntries(current, StatusAdded)
	case len(current) == 0:
		entries = singleSideEntries(previous, StatusDeleted)
	default:
		entries = ld.align(previous, current)
	}

	statuses := make([]Status, len(entries))
	for i, e := range entries {
		statuses[i] = e.Status
	}
	if ld.cfg.Stats != nil {
		*ld.cfg.Stats = listStats(len(previous), len(current), statuses)
	}

	return &ListDiff[T]{
		Type:   TypeList,
		Status: aggregateStatus(statuses),
		Diff:   filterListEntries(entries, ld.cfg.ShowOnly),
	}
}

func singleSideEntries[T any](values []T, status Status) []*ListEntry[T] {
	entries := make([]*ListEntry[T], len(values))
	for i, v := range values {
		e := &ListEntry[T]{Value: v, Status: status}
		if status == StatusAdded {
			e.CurrentIndex = intPtr(i)
		} else {
			e.PreviousIndex = intPtr(i)
		}
		entries[i] = e
	}
	return entries
}

// align matches current elements to previous ones & classifies the result.
// previous indexes are bucketed by canonical hash, either of the whole value
// or of the reference key's value, and each bucket is kept in ascending index
// order. picking the first unconsumed, matching index of a bucket is the
// same as scanning all of previous left to right, since values in other
// buckets can never match
func (ld *listDiffer[T]) align(previous, current []T) []*ListEntry[T] {
	var (
		refKey     = ld.cfg.ReferenceKey
		byRef      = map[string][]int{}
		byValue    = map[string][]int{}
		consumed   = make([]bool, len(previous))
		prevValues = make([]interface{}, len(previous))
		entries    = make([]*ListEntry[T], 0, len(current))
	)

	for i, v := range previous {
		pv := interface{}(v)
		prevValues[i] = pv
		if ref, ok := referenceValue(pv, refKey); ok {
			key := canonicalHash(ref, ld.eq.ignoreOrder)
			byRef[key] = append(byRef[key], i)
			continue
		}
		key := canonicalHash(pv, ld.eq.ignoreOrder)
		byValue[key] = append(byValue[key], i)
	}

	for i, v := range current {
		cv := interface{}(v)
		match := -1
		matchedByRef := false

		if ref, ok := referenceValue(cv, refKey); ok {
			for _, j := range byRef[canonicalHash(ref, ld.eq.ignoreOrder)] {
				if prevRef, _ := referenceValue(prevValues[j], refKey); !consumed[j] && ld.eq.equal(prevRef, ref) {
					match, matchedByRef = j, true
					break
				}
			}
		} else {
			for _, j := range byValue[canonicalHash(cv, ld.eq.ignoreOrder)] {
				if !consumed[j] && ld.eq.equal(prevValues[j], cv) {
					match = j
					break
				}
			}
		}

		if match == -1 {
			entries = append(entries, &ListEntry[T]{
				Value:        v,
				CurrentIndex: intPtr(i),
				Status:       StatusAdded,
			})
			continue
		}
		consumed[match] = true

		// a reference match only guarantees equal keys, the rest of the record
		// may have changed
		same := !matchedByRef || ld.eq.equal(prevValues[match], cv)

		e := &ListEntry[T]{
			Value:         v,
			PreviousIndex: intPtr(match),
			CurrentIndex:  intPtr(i),
			Status:        StatusEqual,
		}
		switch {
		case !same:
			e.Status = StatusUpdated
		case i == match || ld.cfg.IgnoreArrayOrder:
		case ld.cfg.ConsiderMoveAsUpdate:
			e.Status = StatusUpdated
		default:
			e.Status = StatusMoved
		}
		if same {
			e.IndexDelta = intPtr(i - match)
		}
		entries = append(entries, e)
	}

	for j, v := range previous {
		if !consumed[j] {
			entries = append(entries, &ListEntry[T]{
				Value:         v,
				PreviousIndex: intPtr(j),
				Status:        StatusDeleted,
			})
		}
	}
	return entries
}

// referenceValue returns the value stored at key when v is a keyed record
// that has it
func referenceValue(v interface{}, key string) (interface{}, bool) {
	if key == "" {
		return nil, false
	}
	rec, ok := asRecord(v)
	if !ok {
		return nil, false
	}
	ref, ok := rec[key]
	return ref, ok
}

func filterListEntries[T any](entries []*ListEntry[T], showOnly []Status) []*ListEntry[T] {
	set := newStatusSet(showOnly)
	if set == nil {
		if entries == nil {
			return []*ListEntry[T]{}
		}
		return entries
	}
	filtered := []*ListEntry[T]{}
	for _, e := range entries {
		if set[e.Status] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
