package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/adisyon/internal/models"
	"github.com/mmynk/adisyon/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "adisyon-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Snapshots(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Load returns not found before first save", func(t *testing.T) {
		blob, ok, err := store.Load(ctx, storage.MenuKey)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if ok || blob != nil {
			t.Errorf("expected no snapshot, got ok=%v blob=%q", ok, blob)
		}
	})

	t.Run("Save then Load", func(t *testing.T) {
		want := `[{"id":1,"name":"Latte"}]`
		if err := store.Save(ctx, storage.MenuKey, []byte(want)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		blob, ok, err := store.Load(ctx, storage.MenuKey)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !ok {
			t.Fatal("expected snapshot to exist")
		}
		if string(blob) != want {
			t.Errorf("blob = %s, want %s", blob, want)
		}
	})

	t.Run("Save overwrites", func(t *testing.T) {
		if err := store.Save(ctx, storage.MenuKey, []byte(`[]`)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		blob, _, _ := store.Load(ctx, storage.MenuKey)
		if string(blob) != `[]` {
			t.Errorf("blob = %s, want []", blob)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if err := store.Save(ctx, storage.SalesKey, []byte(`[{"id":"s1"}]`)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		menu, _, _ := store.Load(ctx, storage.MenuKey)
		sales, _, _ := store.Load(ctx, storage.SalesKey)
		if string(menu) != `[]` || string(sales) != `[{"id":"s1"}]` {
			t.Errorf("menu = %s, sales = %s", menu, sales)
		}
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("admin", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("GetUserByUsername", func(t *testing.T) {
		got, err := store.GetUserByUsername(ctx, "admin")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got == nil || got.ID != user.ID || got.PasswordHash != "hash" {
			t.Errorf("got %+v, want %+v", got, user)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Username != "admin" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		got, err := store.GetUserByUsername(ctx, "nobody")
		if err != nil || got != nil {
			t.Errorf("got %+v, %v; want nil, nil", got, err)
		}
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("admin", "other")); err == nil {
			t.Error("expected error for duplicate username")
		}
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "adisyon-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)
	dbPath := filepath.Join(tempDir, "test.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Save(ctx, storage.SalesKey, []byte(`[1]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	blob, ok, err := reopened.Load(ctx, storage.SalesKey)
	if err != nil || !ok || string(blob) != `[1]` {
		t.Errorf("Load after reopen = %q, %v, %v", blob, ok, err)
	}
}
