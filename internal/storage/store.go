// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/adisyon/internal/models"
)

// Snapshot keys.
const (
	MenuKey  = "cafe_menu"
	SalesKey = "cafe_sales"
)

// Store defines the interface for durable snapshot storage.
// Menu and sales are saved whole under their key after every change; this
// abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the session layer.
type Store interface {
	// Load returns the blob stored under key.
	// The bool is false when nothing has been saved under key yet.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, blob []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists admin accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername returns nil and no error when the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Backend is a store that holds both snapshots and users.
type Backend interface {
	Store
	UserStore
}
