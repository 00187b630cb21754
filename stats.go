package datadiff

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of elements in the previous input
	Right int `json:"rightNodes"` // count of elements in the current input

	Unchanged int `json:"unchanged,omitempty"` // number of elements left equal
	Inserts   int `json:"inserts,omitempty"`   // number of elements added
	Updates   int `json:"updates,omitempty"`   // number of elements updated
	Deletes   int `json:"deletes,omitempty"`   // number of elements deleted
	Moves     int `json:"moves,omitempty"`     // number of elements moved
}

// NodeChange returns a count of the shift between previous & current inputs
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Changes returns the number of elements that aren't equal
func (s Stats) Changes() int {
	return s.Inserts + s.Updates + s.Deletes + s.Moves
}

func (s *Stats) count(st Status) {
	switch st {
	case StatusEqual:
		s.Unchanged++
	case StatusAdded:
		s.Inserts++
	case StatusUpdated:
		s.Updates++
	case StatusDeleted:
		s.Deletes++
	case StatusMoved:
		s.Moves++
	}
}

func listStats(left, right int, statuses []Status) Stats {
	st := Stats{Left: left, Right: right}
	for _, s := range statuses {
		st.count(s)
	}
	return st
}

// objectStats counts leaf entries, parents only summarise their children
func objectStats(entries []*ObjectEntry) Stats {
	st := Stats{}
	var walk func(entries []*ObjectEntry)
	walk = func(entries []*ObjectEntry) {
		for _, e := range entries {
			if e.Children != nil {
				walk(e.Children)
				continue
			}
			st.count(e.Status)
			if e.Status != StatusAdded {
				st.Left++
			}
			if e.Status != StatusDeleted {
				st.Right++
			}
		}
	}
	walk(entries)
	return st
}
