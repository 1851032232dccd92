package skipnav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hundreds = []int{300, 600, 900, 1000, 700, 400, 100, 200, 500, 800}

func newHundredsMap(t *testing.T) *Map[int, string] {
	t.Helper()
	m := New[int, string](NaturalOrder[int](), WithSeed(5))
	for _, k := range hundreds {
		m.Put(k, "v")
	}
	require.NoError(t, m.Validate())
	return m
}

func TestMapNavigation(t *testing.T) {
	m := newHundredsMap(t)

	k, ok := m.CeilingKey(456)
	require.True(t, ok)
	assert.Equal(t, 500, k)

	k, ok = m.FloorKey(456)
	require.True(t, ok)
	assert.Equal(t, 400, k)

	_, ok = m.CeilingKey(99999)
	assert.False(t, ok)
	_, ok = m.FloorKey(1)
	assert.False(t, ok)

	k, _ = m.HigherKey(500)
	assert.Equal(t, 600, k)
	k, _ = m.LowerKey(500)
	assert.Equal(t, 400, k)
	k, _ = m.CeilingKey(500)
	assert.Equal(t, 500, k)
	k, _ = m.FloorKey(500)
	assert.Equal(t, 500, k)

	_, ok = m.HigherKey(1000)
	assert.False(t, ok)
	_, ok = m.LowerKey(100)
	assert.False(t, ok)

	k, _ = m.HigherKey(-5)
	assert.Equal(t, 100, k)
	k, _ = m.LowerKey(5000)
	assert.Equal(t, 1000, k)

	first, _ := m.FirstKey()
	last, _ := m.LastKey()
	assert.Equal(t, 100, first)
	assert.Equal(t, 1000, last)
}

func TestMapEntryQueriesCarryValues(t *testing.T) {
	m := New[string, int](NaturalOrder[string]())
	m.Put("b", 2)
	m.Put("d", 4)
	m.Put("f", 6)

	e, ok := m.FloorEntry("c")
	require.True(t, ok)
	assert.Equal(t, Entry[string, int]{Key: "b", Value: 2}, e)

	e, ok = m.CeilingEntry("c")
	require.True(t, ok)
	assert.Equal(t, Entry[string, int]{Key: "d", Value: 4}, e)

	e, _ = m.HigherEntry("d")
	assert.Equal(t, "f", e.Key)
	e, _ = m.LowerEntry("d")
	assert.Equal(t, "b", e.Key)
	e, _ = m.FirstEntry()
	assert.Equal(t, 2, e.Value)
	e, _ = m.LastEntry()
	assert.Equal(t, 6, e.Value)

	_, ok = m.LowerEntry("a")
	assert.False(t, ok)
}

func TestMapPresentKeysAgreeAcrossQueries(t *testing.T) {
	m := newHundredsMap(t)
	for _, k := range hundreds {
		v, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, "v", v)

		floor, _ := m.FloorKey(k)
		ceiling, _ := m.CeilingKey(k)
		assert.Equal(t, k, floor)
		assert.Equal(t, k, ceiling)
	}
}

func TestMapPutGetRemove(t *testing.T) {
	m := New[string, int](NaturalOrder[string]())
	validateEveryMutation(t, m.Validate)

	_, replaced := m.Put("a", 1)
	assert.False(t, replaced)
	old, replaced := m.Put("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)

	assert.True(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("b"))
	assert.True(t, m.ContainsValueFunc(func(v int) bool { return v == 2 }))
	assert.False(t, m.ContainsValueFunc(func(v int) bool { return v == 1 }))

	_, ok := m.Get("missing")
	assert.False(t, ok)

	v, ok := m.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, m.IsEmpty())

	_, ok = m.Remove("a")
	assert.False(t, ok)

	_, ok = m.FirstKey()
	assert.False(t, ok)
	_, ok = m.LastEntry()
	assert.False(t, ok)
}

func TestMapNextHigherKey(t *testing.T) {
	m := newHundredsMap(t)

	k, ok := m.NextHigherKey(300)
	require.True(t, ok)
	assert.Equal(t, 400, k)

	_, ok = m.NextHigherKey(350)
	assert.False(t, ok, "key must be present")
	_, ok = m.NextHigherKey(1000)
	assert.False(t, ok)
}

func TestNewFromEntriesLaterEntriesWin(t *testing.T) {
	m := NewFromEntries(NaturalOrder[int](), []Entry[int, string]{
		{Key: 2, Value: "first"},
		{Key: 1, Value: "one"},
		{Key: 2, Value: "second"},
	}, WithInitialCapacity(8), WithLoadFactor(0.5))

	assert.Equal(t, 2, m.Len())
	v, _ := m.Get(2)
	assert.Equal(t, "second", v)
}

func TestMapJSON(t *testing.T) {
	m := newHundredsMap(t)
	out, err := json.Marshal(m)
	require.NoError(t, err)

	var entries []struct {
		Key   int    `json:"key"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(out, &entries))
	require.Len(t, entries, 10)
	for i, e := range entries {
		assert.Equal(t, (i+1)*100, e.Key)
	}

	empty, err := json.Marshal(New[int, int](NaturalOrder[int]()))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestMapViewsAreLive(t *testing.T) {
	m := New[int, string](NaturalOrder[int]())
	keys := m.KeySet()
	entries := m.EntrySet()
	assert.True(t, keys.IsEmpty())

	m.Put(2, "two")
	m.Put(1, "one")

	assert.Equal(t, 2, keys.Len())
	assert.True(t, keys.Contains(1))
	assert.False(t, keys.Contains(3))
	assert.True(t, entries.Contains(2, func(v string) bool { return v == "two" }))
	assert.False(t, entries.Contains(2, func(v string) bool { return v == "one" }))

	var got []Entry[int, string]
	entries.ForEach(func(e Entry[int, string]) { got = append(got, e) })
	assert.Equal(t, []Entry[int, string]{{1, "one"}, {2, "two"}}, got)

	m.Remove(1)
	assert.Equal(t, 1, entries.Len())

	var viewed []int
	for k := range keys.All() {
		viewed = append(viewed, k)
	}
	assert.Equal(t, []int{2}, viewed)
}

func TestMapAllStopsEarly(t *testing.T) {
	m := newHundredsMap(t)
	var seen []int
	for k, v := range m.All() {
		assert.Equal(t, "v", v)
		seen = append(seen, k)
		if k == 300 {
			break
		}
	}
	assert.Equal(t, []int{100, 200, 300}, seen)
}

func TestMapClear(t *testing.T) {
	m := newHundredsMap(t)
	m.Clear()
	assert.Equal(t, 0, m.Len())
	_, ok := m.FirstKey()
	assert.False(t, ok)
	require.NoError(t, m.Validate())

	m.Put(1, "again")
	assert.Equal(t, []Entry[int, string]{{1, "again"}}, m.Entries())
}
