package datadiff

import "sort"

// ObjectEntry describes what happened to a single key of a keyed record.
// Children is only set when the values on both sides are keyed records
type ObjectEntry struct {
	Key           string         `json:"key"`
	PreviousValue interface{}    `json:"previousValue"`
	CurrentValue  interface{}    `json:"currentValue"`
	Status        Status         `json:"status"`
	Children      []*ObjectEntry `json:"children,omitempty"`
}

// ObjectDiff is the result of comparing two keyed records
type ObjectDiff struct {
	Type   DiffType       `json:"type"`
	Status Status         `json:"status"`
	Diff   []*ObjectEntry `json:"diff"`
}

// DiffType implements the Result interface
func (d *ObjectDiff) DiffType() DiffType { return d.Type }

// DiffStatus implements the Result interface
func (d *ObjectDiff) DiffStatus() Status { return d.Status }

// DiffObject recursively compares two keyed records. Every key of either side
// is reported once, in sorted order: keys only in previous are deleted, keys
// only in current are added, keys whose values are both keyed records are
// compared recursively and everything else is compared with Equal.
//
// A nested entry is updated whenever any of its descendants isn't equal.
// Sequences are never recursed into, a sequence compared to a record is an
// update.
//
// OptionShowOnly & OptionGranularity filter the returned entries without
// changing the envelope status
func DiffObject(previous, current map[string]interface{}, opts ...Option) *ObjectDiff {
	cfg := newConfig(opts)
	od := &objectDiffer{
		cfg:    cfg,
		eq:     newEquality(cfg.IgnoreArrayOrder),
		active: map[visit]bool{},
	}

	var entries []*ObjectEntry
	switch {
	case len(previous) == 0 && len(current) == 0:
	case len(previous) == 0:
		entries = singleSideObjectEntries(current, StatusAdded)
	case len(current) == 0:
		entries = singleSideObjectEntries(previous, StatusDeleted)
	default:
		v, _ := od.enter(previous, current)
		entries = od.diffRecords(previous, current)
		od.leave(v)
	}

	statuses := make([]Status, len(entries))
	for i, e := range entries {
		statuses[i] = e.Status
	}
	if cfg.Stats != nil {
		*cfg.Stats = objectStats(entries)
	}

	return &ObjectDiff{
		Type:   TypeObject,
		Status: aggregateStatus(statuses),
		Diff:   filterObjectEntries(entries, cfg.ShowOnly, cfg.Granularity),
	}
}

type objectDiffer struct {
	cfg *Config
	eq  *equality
	// record pairs on the current recursion path
	active map[visit]bool
}

func singleSideObjectEntries(rec map[string]interface{}, status Status) []*ObjectEntry {
	entries := make([]*ObjectEntry, 0, len(rec))
	for _, key := range sortedKeys(rec) {
		e := &ObjectEntry{Key: key, Status: status}
		if status == StatusAdded {
			e.CurrentValue = rec[key]
		} else {
			e.PreviousValue = rec[key]
		}
		entries = append(entries, e)
	}
	return entries
}

func (od *objectDiffer) diffRecords(previous, current map[string]interface{}) []*ObjectEntry {
	keys := sortedKeys(previous)
	for key := range current {
		if _, ok := previous[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	entries := make([]*ObjectEntry, 0, len(keys))
	for _, key := range keys {
		pv, inPrev := previous[key]
		cv, inCurr := current[key]
		switch {
		case !inCurr:
			entries = append(entries, &ObjectEntry{Key: key, PreviousValue: pv, Status: StatusDeleted})
		case !inPrev:
			entries = append(entries, &ObjectEntry{Key: key, CurrentValue: cv, Status: StatusAdded})
		default:
			entries = append(entries, od.diffValues(key, pv, cv))
		}
	}
	return entries
}

func (od *objectDiffer) diffValues(key string, pv, cv interface{}) *ObjectEntry {
	e := &ObjectEntry{Key: key, PreviousValue: pv, CurrentValue: cv, Status: StatusEqual}

	prec, pok := asRecord(pv)
	crec, cok := asRecord(cv)
	if pok && cok {
		if v, recurse := od.enter(pv, cv); recurse {
			e.Children = od.diffRecords(prec, crec)
			od.leave(v)
			for _, ch := range e.Children {
				if ch.Status != StatusEqual {
					e.Status = StatusUpdated
					break
				}
			}
			return e
		}
		// a cycle back to a pair that's already being diffed, fall through
		// to a plain comparison which terminates on cycles
	}

	if !od.eq.equal(pv, cv) {
		e.Status = StatusUpdated
	}
	return e
}

// enter registers a record pair on the recursion path, reporting false if
// it's already there
func (od *objectDiffer) enter(pv, cv interface{}) (visit, bool) {
	idp, okp := identityOf(pv)
	idc, okc := identityOf(cv)
	if !okp || !okc {
		return visit{}, true
	}
	v := visit{idp, idc}
	if od.active[v] {
		return v, false
	}
	od.active[v] = true
	return v, true
}

func (od *objectDiffer) leave(v visit) {
	delete(od.active, v)
}

// filterObjectEntries applies ShowOnly. basic granularity keeps top-level
// entries by their own status. deep granularity keeps an entry when any
// descendant matches, pruning non-matching descendants, or when its own
// status matches
func filterObjectEntries(entries []*ObjectEntry, showOnly []Status, g Granularity) []*ObjectEntry {
	set := newStatusSet(showOnly)
	if set == nil {
		if entries == nil {
			return []*ObjectEntry{}
		}
		return entries
	}
	if g == GranularityDeep {
		if pruned := pruneObjectEntries(entries, set); pruned != nil {
			return pruned
		}
		return []*ObjectEntry{}
	}

	filtered := []*ObjectEntry{}
	for _, e := range entries {
		if set[e.Status] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func pruneObjectEntries(entries []*ObjectEntry, set statusSet) []*ObjectEntry {
	var kept []*ObjectEntry
	for _, e := range entries {
		var children []*ObjectEntry
		if e.Children != nil {
			children = pruneObjectEntries(e.Children, set)
		}
		if len(children) > 0 || set[e.Status] {
			cp := *e
			cp.Children = children
			kept = append(kept, &cp)
		}
	}
	return kept
}
