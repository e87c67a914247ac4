// Package visitor keeps track of who is browsing the site. A visitor has no
// account, only the display name they typed when voting or commenting, which is
// remembered through an injected Storage.
package visitor

import (
	"strings"
	"sync"
)

// UsernameKey is the storage key holding the visitor's display name.
const UsernameKey = "tea-education-username"

// Storage is the persistence capability a Visitor needs.
type Storage interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

type Visitor struct {
	storage Storage
}

func New(storage Storage) *Visitor {
	return &Visitor{storage: storage}
}

// Username returns the remembered name, or an empty string.
func (v *Visitor) Username() string {
	name, _ := v.storage.Get(UsernameKey)
	return name
}

// SetUsername remembers name, trimmed. Blank names are ignored and false is
// returned.
func (v *Visitor) SetUsername(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	v.storage.Set(UsernameKey, name)
	return true
}

func (v *Visitor) ClearUsername() {
	v.storage.Delete(UsernameKey)
}

// MemoryStorage is a Storage backed by a map, safe for concurrent use.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
