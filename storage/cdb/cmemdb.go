// Copyright (C) 2018 go-gt authors
//
// This file is part of the go-gt library.
//
// the go-gt library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// the go-gt library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the go-gt library.  If not, see <http://www.gnu.org/licenses/>.
//

package cdb

import (
	"bytes"
	"sort"
	"sync"
)

// MemoryDB keeps entries in a map. Batching is a no-op.
type MemoryDB struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// kv entry
type kv struct{ k, v []byte }

// NewMemoryStorage init a storage
func NewMemoryStorage() (*MemoryDB, error) {
	return &MemoryDB{
		data: make(map[string][]byte),
	}, nil
}

// Get return value to the key in Storage
func (db *MemoryDB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if v, ok := db.data[string(key)]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, ErrKeyNotFound
}

// Put put the key-value entry to Storage
func (db *MemoryDB) Put(key []byte, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.data[string(key)] = append([]byte(nil), value...)
	return nil
}

func (db *MemoryDB) Has(key []byte) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.data[string(key)]
	return ok, nil
}

func (db *MemoryDB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.data, string(key))
	return nil
}

// EnableBatch enable batch write.
func (db *MemoryDB) EnableBatch() {
}

// Flush write and flush pending batch write.
func (db *MemoryDB) Flush() error {
	return nil
}

// DisableBatch disable batch write.
func (db *MemoryDB) DisableBatch() {
}

func (db *MemoryDB) Close() error {
	return nil
}

// NewIteratorWithPrefix iterates over a snapshot taken at call time.
func (db *MemoryDB) NewIteratorWithPrefix(prefix []byte) Iterator {
	db.mu.RLock()
	entries := make([]*kv, 0, len(db.data))
	for k, v := range db.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			entries = append(entries, &kv{[]byte(k), append([]byte(nil), v...)})
		}
	}
	db.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].k, entries[j].k) < 0
	})
	return &memoryIterator{entries: entries, pos: -1}
}

type memoryIterator struct {
	entries []*kv
	pos     int
}

func (it *memoryIterator) Next() bool {
	if it.pos+1 >= len(it.entries) {
		it.pos = len(it.entries)
		return false
	}
	it.pos++
	return true
}

func (it *memoryIterator) Key() []byte {
	if it.pos < 0 || it.pos >= len(it.entries) {
		return nil
	}
	return it.entries[it.pos].k
}

func (it *memoryIterator) Value() []byte {
	if it.pos < 0 || it.pos >= len(it.entries) {
		return nil
	}
	return it.entries[it.pos].v
}

func (it *memoryIterator) Release() {
	it.entries = nil
}

func (it *memoryIterator) Error() error {
	return nil
}
