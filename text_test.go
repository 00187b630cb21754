package datadiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func textEqual(v string, prev, curr int) *TextEntry {
	return &TextEntry{Value: v, Status: StatusEqual, PreviousIndex: intPtr(prev), CurrentIndex: intPtr(curr)}
}

func textAdded(v string, curr int) *TextEntry {
	return &TextEntry{Value: v, Status: StatusAdded, CurrentIndex: intPtr(curr)}
}

func textDeleted(v string, prev int) *TextEntry {
	return &TextEntry{Value: v, Status: StatusDeleted, PreviousIndex: intPtr(prev)}
}

func textMoved(v string, prev, curr int) *TextEntry {
	return &TextEntry{Value: v, Status: StatusMoved, PreviousIndex: intPtr(prev), CurrentIndex: intPtr(curr)}
}

func TestDiffText(t *testing.T) {
	cases := []struct {
		description string
		prev, curr  string
		opts        []Option
		expect      []*TextEntry
		status      Status
	}{
		{"both blank", "", "  ", nil, []*TextEntry{}, StatusEqual},
		{"previous blank", "", "a b", nil,
			[]*TextEntry{textAdded("a", 0), textAdded("b", 1)},
			StatusAdded,
		},
		{"current blank", "a b", "", []Option{OptionMode(ModeStrict)},
			[]*TextEntry{textDeleted("a", 0), textDeleted("b", 1)},
			StatusDeleted,
		},
		{"identical", "a b", "a b", nil,
			[]*TextEntry{textEqual("a", 0, 0), textEqual("b", 1, 1)},
			StatusEqual,
		},
		{"visual swap", "A B C A B", "A B A B C", nil,
			[]*TextEntry{
				textEqual("A", 0, 0),
				textEqual("B", 1, 1),
				textDeleted("C", 2),
				textAdded("A", 2),
				textDeleted("A", 3),
				textAdded("B", 3),
				textDeleted("B", 4),
				textAdded("C", 4),
			},
			StatusUpdated,
		},
		{"strict swap", "A B C A B", "A B A B C", []Option{OptionMode(ModeStrict)},
			[]*TextEntry{
				textEqual("A", 0, 0),
				textEqual("B", 1, 1),
				textEqual("A", 3, 2),
				textEqual("B", 4, 3),
				textMoved("C", 2, 4),
			},
			StatusUpdated,
		},
		{"strict reorder", "a b", "b a", []Option{OptionMode(ModeStrict)},
			[]*TextEntry{textEqual("b", 1, 0), textMoved("a", 0, 1)},
			StatusUpdated,
		},
		{"visual replace", "the quick brown fox", "the slow brown fox", nil,
			[]*TextEntry{
				textEqual("the", 0, 0),
				textDeleted("quick", 1),
				textAdded("slow", 1),
				textEqual("brown", 2, 2),
				textEqual("fox", 3, 3),
			},
			StatusUpdated,
		},
		{"strict replace", "the quick brown fox", "the slow brown fox", []Option{OptionMode(ModeStrict)},
			[]*TextEntry{
				textEqual("the", 0, 0),
				{Value: "slow", PreviousValue: "quick", Status: StatusUpdated, PreviousIndex: intPtr(1), CurrentIndex: intPtr(1)},
				textEqual("brown", 2, 2),
				textEqual("fox", 3, 3),
			},
			StatusUpdated,
		},
		{"ignore case", "Hello World", "hello world", []Option{OptionIgnoreCase()},
			[]*TextEntry{textEqual("hello", 0, 0), textEqual("world", 1, 1)},
			StatusEqual,
		},
		{"ignore punctuation", "Hello, world", "Hello world!", []Option{OptionIgnorePunctuation(), OptionMode(ModeStrict)},
			[]*TextEntry{textEqual("Hello", 0, 0), textEqual("world!", 1, 1)},
			StatusEqual,
		},
		{"characters", "abc", "abd", []Option{OptionSeparation(SeparationCharacter)},
			[]*TextEntry{
				textEqual("a", 0, 0),
				textEqual("b", 1, 1),
				textDeleted("c", 2),
				textAdded("d", 2),
			},
			StatusUpdated,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got := DiffText(c.prev, c.curr, c.opts...)
			assert.Equal(t, TypeText, got.Type)
			assert.Equal(t, c.status, got.Status)
			if diff := cmp.Diff(c.expect, got.Diff); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffTextStrictNeverLongerThanVisual(t *testing.T) {
	cases := [][2]string{
		{"A B C A B", "A B A B C"},
		{"the cat sat on the mat", "on the mat the cat sat"},
		{"a a a b", "b a a a"},
		{"one two three", "three two one"},
		{"x y z", "p q r"},
		{"a b c d e f", "a c e b d f"},
	}

	changes := func(d *TextDiff) int {
		n := 0
		for _, e := range d.Diff {
			if e.Status != StatusEqual {
				n++
			}
		}
		return n
	}

	for _, c := range cases {
		visual := DiffText(c[0], c[1])
		strict := DiffText(c[0], c[1], OptionMode(ModeStrict))
		assert.LessOrEqual(t, changes(strict), changes(visual), "%q -> %q", c[0], c[1])
	}
}

func TestDiffTextTotality(t *testing.T) {
	prev, curr := "a b c a d", "d a b e a"
	for _, mode := range []Mode{ModeVisual, ModeStrict} {
		got := DiffText(prev, curr, OptionMode(mode))
		seenPrev := map[int]bool{}
		seenCurr := map[int]bool{}
		for _, e := range got.Diff {
			if e.PreviousIndex != nil {
				assert.False(t, seenPrev[*e.PreviousIndex], "%s: previous index %d reported twice", mode, *e.PreviousIndex)
				seenPrev[*e.PreviousIndex] = true
			}
			if e.CurrentIndex != nil {
				assert.False(t, seenCurr[*e.CurrentIndex], "%s: current index %d reported twice", mode, *e.CurrentIndex)
				seenCurr[*e.CurrentIndex] = true
			}
		}
		assert.Len(t, seenPrev, 5, mode)
		assert.Len(t, seenCurr, 5, mode)
	}
}

func TestDiffTextStats(t *testing.T) {
	st := &Stats{}
	DiffText("A B C A B", "A B A B C", OptionMode(ModeStrict), OptionSetStats(st))
	if diff := cmp.Diff(&Stats{Left: 5, Right: 5, Unchanged: 4, Moves: 1}, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}
