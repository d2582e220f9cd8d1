package listdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddKeepsOrderAndDuplicates(t *testing.T) {
	d := New[string, string]()
	d.Add("a", "1")
	d.Add("a", "2")
	d.Add("a", "1")
	d.Add("b", "3")

	assert.Equal(t, []string{"1", "2", "1"}, d.Get("a"))
	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.Equal(t, 4, d.Count())
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"1", "2", "1", "3"}, d.Values())
}

func TestGetUnknownKeyIsNil(t *testing.T) {
	d := New[string, int]()
	assert.Nil(t, d.Get("missing"))
	assert.False(t, d.ContainsKey("missing"))
}

func TestGetReturnsCopy(t *testing.T) {
	d := New[string, int]()
	d.Add("k", 1)
	got := d.Get("k")
	got[0] = 99
	assert.Equal(t, []int{1}, d.Get("k"))
}

func TestRemove(t *testing.T) {
	d := New[string, int]()
	d.AddMany("k", []int{1, 2, 1})

	assert.True(t, d.Remove("k", 1))
	assert.Equal(t, []int{2, 1}, d.Get("k"))
	assert.True(t, d.Contains("k", 1))
	assert.False(t, d.Remove("k", 5))
	assert.False(t, d.Remove("other", 1))

	d.Remove("k", 2)
	d.Remove("k", 1)
	assert.False(t, d.ContainsKey("k"))
	assert.Empty(t, d.Keys())
	assert.Equal(t, 0, d.Count())
}

func TestRemoveKeyAndClear(t *testing.T) {
	d := New[int, string]()
	d.AddMany(1, []string{"a", "b"})
	d.Add(2, "c")

	assert.True(t, d.RemoveKey(1))
	assert.False(t, d.RemoveKey(1))
	assert.Equal(t, []int{2}, d.Keys())
	assert.Equal(t, 1, d.Count())

	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Get(2))
}

func TestFromSlice(t *testing.T) {
	assert.Nil(t, FromSlice[int, string](nil, func(s string) int { return len(s) }))

	d := FromSlice([]string{"a", "bb", "c", "dd"}, func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "c"}, d.Get(1))
	assert.Equal(t, []string{"bb", "dd"}, d.Get(2))
	assert.Equal(t, []int{1, 2}, d.Keys())
}
