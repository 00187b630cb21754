package datadiff

import (
	"encoding/json"
	"testing"
)

func TestFormatPretty(t *testing.T) {
	var prev, curr map[string]interface{}
	if err := json.Unmarshal([]byte(`{"id":54,"user":{"name":"joe","age":66}}`), &prev); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"id":54,"user":{"name":"joe","age":67},"tags":["a"]}`), &curr); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		description string
		input       Result
		color       bool
		expect      string
	}{
		{"object",
			DiffObject(prev, curr),
			false,
			"  id: 54\n+ tags: [\"a\"]\n~ user:\n  ~ age: 66 -> 67\n    name: \"joe\"\n",
		},
		{"object deleted",
			DiffObject(map[string]interface{}{"a": true}, nil),
			false,
			"- a: true\n",
		},
		{"list",
			DiffList([]string{"a", "b"}, []string{"a", "a", "b"}),
			false,
			"  \"a\"  0 -> 0\n+ \"a\"  - -> 1\n> \"b\"  1 -> 2\n",
		},
		{"list pads wide values",
			DiffList([]string{"日本"}, []string{"x", "日本"}),
			false,
			"+ \"x\"     - -> 0\n> \"日本\"  0 -> 1\n",
		},
		{"text words",
			DiffText("the quick brown fox", "the slow brown fox"),
			false,
			"the [-quick-] {+slow+} brown fox\n",
		},
		{"text updates",
			DiffText("the quick brown fox", "the slow brown fox", OptionMode(ModeStrict)),
			false,
			"the [-quick-]{+slow+} brown fox\n",
		},
		{"text moves",
			DiffText("a b", "b a", OptionMode(ModeStrict)),
			false,
			"b {>a<}\n",
		},
		{"text characters",
			DiffText("abc", "abd", OptionSeparation(SeparationCharacter)),
			false,
			"ab[-c-]{+d+}\n",
		},
		{"empty text",
			DiffText("", ""),
			false,
			"",
		},
		{"color",
			DiffText("", "a"),
			true,
			"\x1b[32m{+a+}\x1b[0m\n",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got, err := FormatPrettyString(c.input, c.color)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.expect {
				t.Errorf("want:\n%q\ngot:\n%q", c.expect, got)
			}
		})
	}
}

func TestFormatPrettyMarshalError(t *testing.T) {
	d := DiffObject(nil, map[string]interface{}{"ch": make(chan int)})
	if _, err := FormatPrettyString(d, false); err == nil {
		t.Error("expected unmarshalable values to error")
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		color       bool
		expect      string
	}{
		{"all plural",
			&Stats{Left: 2, Right: 6, Inserts: 6, Updates: 2, Deletes: 2},
			false,
			"+4 elements. 6 inserts. 2 deletes. 2 updates.\n",
		},
		{"all singular",
			&Stats{Left: 2, Right: 1, Inserts: 1, Updates: 1, Deletes: 1},
			false,
			"-1 element. 1 insert. 1 delete. 1 update.\n",
		},
		{"moves",
			&Stats{Left: 3, Right: 3, Unchanged: 1, Moves: 2},
			false,
			"0 elements. 0 inserts. 0 deletes. 0 updates. 2 moves.\n",
		},
		{"color",
			&Stats{Left: 1, Right: 2, Unchanged: 1, Inserts: 1},
			true,
			"\x1b[32m+1 \x1b[0m\x1b[37melement\x1b[0m. \x1b[32m1 insert.\x1b[0m \x1b[31m0 deletes.\x1b[0m \x1b[34m0 updates.\x1b[0m\n",
		},
	}

	for i, c := range cases {
		got := formatStats(c.input, c.color)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%q\ngot:\n%q", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStats(nil)
	expect := `<nil>`
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
