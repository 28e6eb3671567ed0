// Package hashmap wraps Go maps behind an Option-returning API so lookups
// and overwrites compose with the rest of the library.
package hashmap

import (
	"fmt"
	"strings"

	"github.com/ib-77/strata/pkg/collections/list"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type Map[K comparable, V any] struct {
	m map[K]V
}

func New[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{m: make(map[K]V, len(entries))}
	for _, e := range entries {
		m.m[e.Key] = e.Value
	}
	return m
}

// FromMap copies a Go map.
func FromMap[K comparable, V any](src map[K]V) *Map[K, V] {
	m := &Map[K, V]{m: make(map[K]V, len(src))}
	for k, v := range src {
		m.m[k] = v
	}
	return m
}

func FromIter[K comparable, V any](it seq.Iterator[Entry[K, V]]) *Map[K, V] {
	m := New[K, V]()
	for e := range seq.All(it) {
		m.m[e.Key] = e.Value
	}
	return m
}

func (m *Map[K, V]) init() {
	if m.m == nil {
		m.m = make(map[K]V)
	}
}

func (m *Map[K, V]) Get(key K) option.Option[V] {
	v, ok := m.m[key]
	return option.FromPair(v, ok)
}

// Set stores value under key and returns the value it replaced, if any.
func (m *Map[K, V]) Set(key K, value V) option.Option[V] {
	m.init()
	prev := m.Get(key)
	m.m[key] = value
	return prev
}

// Remove deletes key and returns the value it held, if any.
func (m *Map[K, V]) Remove(key K) option.Option[V] {
	prev := m.Get(key)
	delete(m.m, key)
	return prev
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.m[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.m)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.m) == 0
}

func (m *Map[K, V]) Clear() {
	clear(m.m)
}

// Iter snapshots the entries into a linked list and walks it once.
// Entry order is unspecified.
func (m *Map[K, V]) Iter() seq.Iterator[Entry[K, V]] {
	entries := list.New[Entry[K, V]]()
	for k, v := range m.m {
		entries.PushBack(Entry[K, V]{Key: k, Value: v})
	}
	return entries.Iter()
}

func (m *Map[K, V]) Entries() []Entry[K, V] {
	return seq.Collect(m.Iter())
}

func (m *Map[K, V]) Keys() []K {
	return seq.Collect(seq.Map(m.Iter(), func(e Entry[K, V]) K { return e.Key }))
}

func (m *Map[K, V]) Values() []V {
	return seq.Collect(seq.Map(m.Iter(), func(e Entry[K, V]) V { return e.Value }))
}

func (m *Map[K, V]) KeySet() *Set[K] {
	return SetFromIter(seq.Map(m.Iter(), func(e Entry[K, V]) K { return e.Key }))
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return FromMap(m.m)
}

func (m *Map[K, V]) String() string {
	if m.IsEmpty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for k, v := range m.m {
		fmt.Fprintf(&b, "\t%v => %v\n", k, v)
	}
	b.WriteString("}")
	return b.String()
}
