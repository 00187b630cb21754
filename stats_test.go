package datadiff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcStats(t *testing.T) {
	aJSON := []byte(`{"a": 100,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 4,"c": false,"d": "apples-and-oranges"},"e": null,"g": "apples-and-oranges"}}`)
	bJSON := []byte(`{"a": 99,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 5,"c": false,"d": "apples-and-oranges"},"e": "thirty-thousand-something-dogecoin","f": {"a" : false, "b": true}}}`)

	var a, b map[string]interface{}
	if err := json.Unmarshal(aJSON, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(bJSON, &b); err != nil {
		t.Fatal(err)
	}

	expect := &Stats{
		Left:      8,
		Right:     8,
		Unchanged: 4,
		Inserts:   1,
		Updates:   3,
		Deletes:   1,
	}
	stats := &Stats{}
	DiffObject(a, b, OptionSetStats(stats))

	if expect.NodeChange() != stats.NodeChange() {
		t.Errorf("wrong node change. want: %d. got: %d", expect.NodeChange(), stats.NodeChange())
	}
	if expect.Changes() != stats.Changes() {
		t.Errorf("wrong change count. want: %d. got: %d", expect.Changes(), stats.Changes())
	}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcStatsIgnoresShowOnly(t *testing.T) {
	a := map[string]interface{}{"a": 1, "b": 2}
	b := map[string]interface{}{"a": 1, "c": 3}

	all, filtered := &Stats{}, &Stats{}
	DiffObject(a, b, OptionSetStats(all))
	DiffObject(a, b, OptionSetStats(filtered), OptionShowOnly(StatusAdded))
	if diff := cmp.Diff(all, filtered); diff != "" {
		t.Errorf("filtering changed stats (-want +got):\n%s", diff)
	}
}
