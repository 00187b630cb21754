package datadiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatus(t *testing.T) {
	cases := []struct {
		description string
		input       []Status
		expect      Status
	}{
		{"no entries", nil, StatusEqual},
		{"all equal", []Status{StatusEqual, StatusEqual}, StatusEqual},
		{"all added", []Status{StatusAdded, StatusAdded}, StatusAdded},
		{"all deleted", []Status{StatusDeleted}, StatusDeleted},
		{"all moved", []Status{StatusMoved, StatusMoved}, StatusUpdated},
		{"all updated", []Status{StatusUpdated}, StatusUpdated},
		{"mixed", []Status{StatusEqual, StatusAdded}, StatusUpdated},
		{"added & deleted", []Status{StatusAdded, StatusDeleted}, StatusUpdated},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert.Equal(t, c.expect, aggregateStatus(c.input))
		})
	}
}

func TestParsers(t *testing.T) {
	st, err := ParseStatus(" Added ")
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, st)
	_, err = ParseStatus("renamed")
	assert.EqualError(t, err, `unknown status "renamed"`)

	g, err := ParseGranularity("DEEP")
	require.NoError(t, err)
	assert.Equal(t, GranularityDeep, g)
	_, err = ParseGranularity("shallow")
	assert.Error(t, err)

	sep, err := ParseSeparation("sentence")
	require.NoError(t, err)
	assert.Equal(t, SeparationSentence, sep)
	_, err = ParseSeparation("paragraph")
	assert.Error(t, err)

	m, err := ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)
	_, err = ParseMode("fuzzy")
	assert.Error(t, err)
}

func TestOptionConfig(t *testing.T) {
	cfg := newConfig([]Option{
		OptionConfig(Config{IgnoreCase: true}),
		OptionMode(ModeStrict),
	})
	assert.True(t, cfg.IgnoreCase)
	assert.Equal(t, ModeStrict, cfg.Mode)
	assert.Equal(t, GranularityBasic, cfg.Granularity)
	assert.Equal(t, SeparationWord, cfg.Separation)
}
