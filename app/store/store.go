// Package store provides persistent settings storage.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a setting is not found in the store.
var ErrNotFound = errors.New("setting not found")

// DBType identifies the database engine backing the store.
type DBType int

// Supported database engines.
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker abstracts the read-write lock so the postgres path can skip
// locking entirely (the server handles concurrency).
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noopLocker is used for postgres where no client-side locking is needed.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// ensure sync.RWMutex satisfies RWLocker
var _ RWLocker = (*sync.RWMutex)(nil)
