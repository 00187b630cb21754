package datadiff

// TextEntry describes what happened to a single token. PreviousValue is only
// set for updated tokens
type TextEntry struct {
	Value         string `json:"value"`
	PreviousValue string `json:"previousValue,omitempty"`
	Status        Status `json:"status"`
	PreviousIndex *int   `json:"previousIndex"`
	CurrentIndex  *int   `json:"currentIndex"`
}

// TextDiff is the result of comparing two texts
type TextDiff struct {
	Type   DiffType     `json:"type"`
	Status Status       `json:"status"`
	Diff   []*TextEntry `json:"diff"`

	separation Separation
}

// DiffType implements the Result interface
func (d *TextDiff) DiffType() DiffType { return d.Type }

// DiffStatus implements the Result interface
func (d *TextDiff) DiffStatus() Status { return d.Status }

// DiffText tokenizes two texts and aligns the tokens.
//
// The default visual mode pairs tokens by position: a token is equal when
// the first unused previous token with the same normalized value sits at the
// same index. A token found at a different index is reported as deleted at
// its old index & added at its new one, which renders naturally but isn't a
// minimal edit script.
//
// Strict mode runs Myers' shortest edit script over the tokens, then reports
// a deleted & inserted token with the same normalized value as one moved
// entry, and pairs the remaining deletions & insertions of each changed
// region into updated entries.
//
// Blank texts are valid: comparing against one reports every token of the
// other side as added or deleted
func DiffText(previous, current string, opts ...Option) *TextDiff {
	cfg := newConfig(opts)
	prev := tokenize(previous, cfg)
	curr := tokenize(current, cfg)

	var entries []*TextEntry
	switch {
	case len(prev) == 0 && len(curr) == 0:
	case len(prev) == 0:
		entries = singleSideTextEntries(curr, StatusAdded)
	case len(curr) == 0:
		entries = singleSideTextEntries(prev, StatusDeleted)
	case cfg.Mode == ModeStrict:
		entries = strictTextDiff(prev, curr)
	default:
		entries = visualTextDiff(prev, curr)
	}

	statuses := make([]Status, len(entries))
	for i, e := range entries {
		statuses[i] = e.Status
	}
	if cfg.Stats != nil {
		*cfg.Stats = listStats(len(prev), len(curr), statuses)
	}
	if entries == nil {
		entries = []*TextEntry{}
	}

	return &TextDiff{
		Type:       TypeText,
		Status:     aggregateStatus(statuses),
		Diff:       entries,
		separation: cfg.Separation,
	}
}

func singleSideTextEntries(tokens []Token, status Status) []*TextEntry {
	entries := make([]*TextEntry, len(tokens))
	for i, t := range tokens {
		entries[i] = tokenEntry(t, status)
	}
	return entries
}

func tokenEntry(t Token, status Status) *TextEntry {
	e := &TextEntry{Value: t.Value, Status: status}
	if status == StatusDeleted {
		e.PreviousIndex = intPtr(t.Index)
	} else {
		e.CurrentIndex = intPtr(t.Index)
	}
	return e
}

// visualTextDiff pairs each current token with the first unused previous
// token of the same normalized value. entries are ordered by position:
// deletions at index i come before the current token at index i
func visualTextDiff(prev, curr []Token) []*TextEntry {
	queues := map[string][]int{}
	for _, t := range prev {
		queues[t.NormalizedValue] = append(queues[t.NormalizedValue], t.Index)
	}

	consumed := make([]bool, len(prev))
	currentEntries := make([]*TextEntry, len(curr))
	deletedAt := make([][]*TextEntry, len(prev))

	for i, t := range curr {
		q := queues[t.NormalizedValue]
		if len(q) == 0 {
			currentEntries[i] = tokenEntry(t, StatusAdded)
			continue
		}
		j := q[0]
		queues[t.NormalizedValue] = q[1:]
		consumed[j] = true

		if j == i {
			currentEntries[i] = &TextEntry{
				Value:         t.Value,
				Status:        StatusEqual,
				PreviousIndex: intPtr(j),
				CurrentIndex:  intPtr(i),
			}
			continue
		}
		deletedAt[j] = append(deletedAt[j], tokenEntry(prev[j], StatusDeleted))
		currentEntries[i] = tokenEntry(t, StatusAdded)
	}
	for j, t := range prev {
		if !consumed[j] {
			deletedAt[j] = append(deletedAt[j], tokenEntry(t, StatusDeleted))
		}
	}

	entries := make([]*TextEntry, 0, len(prev)+len(curr))
	for pos := 0; pos < len(prev) || pos < len(curr); pos++ {
		if pos < len(prev) {
			entries = append(entries, deletedAt[pos]...)
		}
		if pos < len(curr) {
			entries = append(entries, currentEntries[pos])
		}
	}
	return entries
}

// strictTextDiff classifies a Myers edit script over normalized values
func strictTextDiff(prev, curr []Token) []*TextEntry {
	ops := myers(len(prev), len(curr), func(i, j int) bool {
		return prev[i].NormalizedValue == curr[j].NormalizedValue
	})

	// pair deletions & insertions of the same value as moves, first deletion
	// first
	deleted := map[string][]int{}
	for _, op := range ops {
		if op.op == opDelete {
			v := prev[op.ai].NormalizedValue
			deleted[v] = append(deleted[v], op.ai)
		}
	}
	movedFrom := map[int]int{} // current index -> previous index
	movedTo := map[int]bool{}  // previous indexes consumed by a move
	for _, op := range ops {
		if op.op != opInsert {
			continue
		}
		v := curr[op.bi].NormalizedValue
		if q := deleted[v]; len(q) > 0 {
			movedFrom[op.bi] = q[0]
			movedTo[q[0]] = true
			deleted[v] = q[1:]
		}
	}

	// within each run of edits, pair leftover deletions & insertions in order
	updatedWith := map[int]int{} // previous index -> current index
	pairedInsert := map[int]bool{}
	for start := 0; start < len(ops); {
		if ops[start].op == opEqual {
			start++
			continue
		}
		end := start
		var dels, ins []int
		for ; end < len(ops) && ops[end].op != opEqual; end++ {
			switch op := ops[end]; {
			case op.op == opDelete && !movedTo[op.ai]:
				dels = append(dels, op.ai)
			case op.op == opInsert:
				if _, ok := movedFrom[op.bi]; !ok {
					ins = append(ins, op.bi)
				}
			}
		}
		for k := 0; k < len(dels) && k < len(ins); k++ {
			updatedWith[dels[k]] = ins[k]
			pairedInsert[ins[k]] = true
		}
		start = end
	}

	entries := make([]*TextEntry, 0, len(ops))
	for _, op := range ops {
		switch op.op {
		case opEqual:
			entries = append(entries, &TextEntry{
				Value:         curr[op.bi].Value,
				Status:        StatusEqual,
				PreviousIndex: intPtr(op.ai),
				CurrentIndex:  intPtr(op.bi),
			})
		case opDelete:
			if movedTo[op.ai] {
				continue
			}
			if j, ok := updatedWith[op.ai]; ok {
				entries = append(entries, &TextEntry{
					Value:         curr[j].Value,
					PreviousValue: prev[op.ai].Value,
					Status:        StatusUpdated,
					PreviousIndex: intPtr(op.ai),
					CurrentIndex:  intPtr(j),
				})
				continue
			}
			entries = append(entries, tokenEntry(prev[op.ai], StatusDeleted))
		case opInsert:
			if pairedInsert[op.bi] {
				continue
			}
			if i, ok := movedFrom[op.bi]; ok {
				status := StatusMoved
				if i == op.bi {
					status = StatusEqual
				}
				entries = append(entries, &TextEntry{
					Value:         curr[op.bi].Value,
					Status:        status,
					PreviousIndex: intPtr(i),
					CurrentIndex:  intPtr(op.bi),
				})
				continue
			}
			entries = append(entries, tokenEntry(curr[op.bi], StatusAdded))
		}
	}
	return entries
}
