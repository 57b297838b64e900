// Package memory holds in-memory repository implementations backed by one
// shared store, mirroring how the postgres repositories share one database.
// They keep the registry and history semantics exercisable without a running
// postgres instance.
package memory

import (
	"sync"

	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	clients   map[string]domain.Client // keyed by normalized tax id
	accounts  map[int64]domain.Account // keyed by account number
	movements []domain.Movement
}

func NewStore() *Store {
	return &Store{
		clients:  make(map[string]domain.Client),
		accounts: make(map[int64]domain.Account),
	}
}
