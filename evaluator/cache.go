package evaluator

import (
	"encoding/binary"
	"math/big"

	"github.com/spaolacci/murmur3"

	"github.com/ezrec/teleporter/register"
)

// Entry is a memoized call exit.
type Entry struct {
	R0   *big.Int
	R1   *big.Int
	Step int // Step counter when the call first returned.
}

type slot[V any] struct {
	key   register.Triple
	value V
}

// table maps register triples to values, bucketed by murmur3 hash.
type table[V any] struct {
	buckets map[uint64][]slot[V]
	size    int
}

func hashTriple(key register.Triple) uint64 {
	h := murmur3.New64()
	var size [binary.MaxVarintLen64]byte
	for _, val := range [...]*big.Int{key.R0, key.R1, key.R7} {
		bytes := val.Bytes()
		n := binary.PutUvarint(size[:], uint64(len(bytes)))
		h.Write(size[:n])
		h.Write(bytes)
	}
	return h.Sum64()
}

func (tb *table[V]) get(key register.Triple) (value V, ok bool) {
	for _, sl := range tb.buckets[hashTriple(key)] {
		if sl.key.Equal(key) {
			return sl.value, true
		}
	}
	return
}

func (tb *table[V]) put(key register.Triple, value V) {
	if tb.buckets == nil {
		tb.buckets = make(map[uint64][]slot[V])
	}

	hash := hashTriple(key)
	bucket := tb.buckets[hash]
	for n := range bucket {
		if bucket[n].key.Equal(key) {
			bucket[n].value = value
			return
		}
	}
	tb.buckets[hash] = append(bucket, slot[V]{key: key, value: value})
	tb.size++
}

// Cache memoizes calls that exit at the pending-call depth they were
// first entered at. It lives for one evaluation.
type Cache struct {
	entries table[Entry]
	seenAt  table[int]
}

// Lookup returns the memoized exit for an entry triple.
func (c *Cache) Lookup(key register.Triple) (entry Entry, ok bool) {
	return c.entries.get(key)
}

// Seen records the depth of the first entry with this triple.
func (c *Cache) Seen(key register.Triple, depth int) {
	if _, ok := c.seenAt.get(key); !ok {
		c.seenAt.put(key, depth)
	}
}

// Store memoizes the exit of key, if depth matches its first entry.
func (c *Cache) Store(key register.Triple, depth int, entry Entry) (stored bool) {
	first, ok := c.seenAt.get(key)
	if !ok || first != depth {
		return
	}

	c.entries.put(key, Entry{
		R0:   new(big.Int).Set(entry.R0),
		R1:   new(big.Int).Set(entry.R1),
		Step: entry.Step,
	})
	stored = true
	return
}

// Len is the number of memoized entries.
func (c *Cache) Len() int {
	return c.entries.size
}
