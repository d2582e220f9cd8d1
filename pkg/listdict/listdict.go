// ABOUTME: Multi-value index mapping a key to an ordered list of values
// ABOUTME: Backs the multi-valued secondary indexes of every entity store

package listdict

// ListDictionary maps each key to the values added under it, in insertion
// order. Duplicate values are kept. It is not safe for concurrent use.
type ListDictionary[K comparable, V comparable] struct {
	items map[K][]V
	keys  []K
	count int
}

// New creates an empty dictionary
func New[K comparable, V comparable]() *ListDictionary[K, V] {
	return &ListDictionary[K, V]{items: make(map[K][]V)}
}

// FromSlice groups items by keyFn. Returns nil for empty input.
func FromSlice[K comparable, V comparable](items []V, keyFn func(V) K) *ListDictionary[K, V] {
	if len(items) == 0 {
		return nil
	}
	d := New[K, V]()
	for _, item := range items {
		d.Add(keyFn(item), item)
	}
	return d
}

// Add appends value to the list for key
func (d *ListDictionary[K, V]) Add(key K, value V) {
	list, ok := d.items[key]
	if !ok {
		d.keys = append(d.keys, key)
	}
	d.items[key] = append(list, value)
	d.count++
}

// AddMany appends each value to the list for key
func (d *ListDictionary[K, V]) AddMany(key K, values []V) {
	for _, v := range values {
		d.Add(key, v)
	}
}

// Get returns the values for key, or nil if the key is unknown
func (d *ListDictionary[K, V]) Get(key K) []V {
	list, ok := d.items[key]
	if !ok {
		return nil
	}
	out := make([]V, len(list))
	copy(out, list)
	return out
}

// ContainsKey reports whether key has any values
func (d *ListDictionary[K, V]) ContainsKey(key K) bool {
	_, ok := d.items[key]
	return ok
}

// Contains reports whether value is listed under key
func (d *ListDictionary[K, V]) Contains(key K, value V) bool {
	for _, v := range d.items[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of value under key and drops the key
// once its list is empty. Reports whether anything was removed.
func (d *ListDictionary[K, V]) Remove(key K, value V) bool {
	list, ok := d.items[key]
	if !ok {
		return false
	}
	for i, v := range list {
		if v != value {
			continue
		}
		list = append(list[:i:i], list[i+1:]...)
		d.count--
		if len(list) == 0 {
			d.dropKey(key)
		} else {
			d.items[key] = list
		}
		return true
	}
	return false
}

// RemoveKey deletes key and all its values
func (d *ListDictionary[K, V]) RemoveKey(key K) bool {
	list, ok := d.items[key]
	if !ok {
		return false
	}
	d.count -= len(list)
	d.dropKey(key)
	return true
}

func (d *ListDictionary[K, V]) dropKey(key K) {
	delete(d.items, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in first-insertion order
func (d *ListDictionary[K, V]) Keys() []K {
	out := make([]K, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns every value, grouped by key in key order
func (d *ListDictionary[K, V]) Values() []V {
	out := make([]V, 0, d.count)
	for _, k := range d.keys {
		out = append(out, d.items[k]...)
	}
	return out
}

// Count returns the total number of values across all keys
func (d *ListDictionary[K, V]) Count() int {
	return d.count
}

// Len returns the number of keys
func (d *ListDictionary[K, V]) Len() int {
	return len(d.keys)
}

// Clear removes everything
func (d *ListDictionary[K, V]) Clear() {
	d.items = make(map[K][]V)
	d.keys = nil
	d.count = 0
}
