package differ

// keyedIndex is an ordered map from identity key to value. Keys keep the
// order of their first occurrence; a duplicate key keeps the last value.
type keyedIndex[T any] struct {
	keys  []string
	byKey map[string]T
}

func indexBy[T any](items []T, key func(T) string) keyedIndex[T] {
	idx := keyedIndex[T]{
		keys:  make([]string, 0, len(items)),
		byKey: make(map[string]T, len(items)),
	}
	for _, item := range items {
		k := key(item)
		if _, seen := idx.byKey[k]; !seen {
			idx.keys = append(idx.keys, k)
		}
		idx.byKey[k] = item
	}
	return idx
}

// keyedDiff holds the three-way split of two collections.
type keyedDiff[T any] struct {
	removed []T
	added   []T
	common  []pair[T]
}

type pair[T any] struct {
	key      string
	old, new T
}

// diffKeyed splits two collections by identity key into removed (old
// order), added (new order), and common (old order) entries.
func diffKeyed[T any](oldItems, newItems []T, key func(T) string) keyedDiff[T] {
	oldIdx := indexBy(oldItems, key)
	newIdx := indexBy(newItems, key)

	var d keyedDiff[T]
	for _, k := range oldIdx.keys {
		o := oldIdx.byKey[k]
		n, ok := newIdx.byKey[k]
		if !ok {
			d.removed = append(d.removed, o)
			continue
		}
		d.common = append(d.common, pair[T]{key: k, old: o, new: n})
	}
	for _, k := range newIdx.keys {
		if _, ok := oldIdx.byKey[k]; !ok {
			d.added = append(d.added, newIdx.byKey[k])
		}
	}
	return d
}

// stringSetDiff returns the elements of oldItems missing from newItems and
// the elements of newItems missing from oldItems, each in its own order.
func stringSetDiff(oldItems, newItems []string) (removed, added []string) {
	d := diffKeyed(oldItems, newItems, func(s string) string { return s })
	return d.removed, d.added
}
