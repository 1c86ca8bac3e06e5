// Package tally provides a small insertion-ordered frequency table.
package tally

// Counter maps keys to counts. Ties in MostCommon are broken by the order in
// which keys were first added.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func New[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

// Add increases the count for key by n.
func (c *Counter[K]) Add(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Inc increases the count for key by one.
func (c *Counter[K]) Inc(key K) { c.Add(key, 1) }

// Count returns the count for key.
func (c *Counter[K]) Count(key K) int { return c.counts[key] }

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int { return len(c.order) }

// MostCommon returns the key with the highest count. ok is false when the
// counter is empty.
func (c *Counter[K]) MostCommon() (key K, ok bool) {
	best := -1
	for _, k := range c.order {
		if n := c.counts[k]; n > best {
			best = n
			key = k
			ok = true
		}
	}
	return key, ok
}

// AtLeast returns, in first-seen order, every key whose count is >= min.
func (c *Counter[K]) AtLeast(min int) []K {
	var out []K
	for _, k := range c.order {
		if c.counts[k] >= min {
			out = append(out, k)
		}
	}
	return out
}
