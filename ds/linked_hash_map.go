package ds

import (
	"bytes"
	"container/list"
	"encoding/json"
	"fmt"
)

// LinkedHashMap is a map that remembers the order in which keys were first
// inserted, both for Keys and for JSON output.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		keys = append(keys, runner.Value.(K))
	}
	return keys
}

// Put sets the value of key. Overwriting an existing key keeps its original
// position.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

// Update replaces the value of key with the result of updater, which receives
// the zero value for a new key.
func (r *LinkedHashMap[K, V]) Update(key K, updater func(value V) V) V {
	value := updater(r.hashMap[key])
	r.Put(key, value)
	return value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

// MarshalJSON writes an object whose members follow insertion order. Keys are
// formatted with fmt when they are not strings.
func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)

		keyBs, err := json.Marshal(fmt.Sprint(key))
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if runner.Next() != nil {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
