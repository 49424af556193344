package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/adisyon/internal/auth"
	"github.com/mmynk/adisyon/internal/middleware"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/internal/storage/sqlite"
	"github.com/mmynk/adisyon/pkg/api"
	"github.com/mmynk/adisyon/pkg/api/apiconnect"
)

type testServer struct {
	pos   apiconnect.PosServiceClient
	admin apiconnect.AdminServiceClient
	auth  apiconnect.AuthServiceClient
	cafe  *session.Controller
}

// setupTestServer serves all three services over a temp SQLite database
// seeded with the default menu and an admin/123 account.
func setupTestServer(t *testing.T) (*testServer, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	ctx := context.Background()
	cafe := session.New(store, 10)
	if err := cafe.Load(ctx); err != nil {
		t.Fatalf("failed to load session: %v", err)
	}

	authenticator := auth.NewPasswordAuthenticator(store, 0)
	if _, err := authenticator.EnsureUser(ctx, "admin", "123"); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	logging := connect.WithInterceptors(middleware.LoggingInterceptor(nil))
	posPath, posHandler := apiconnect.NewPosServiceHandler(NewPosService(cafe), logging)
	adminPath, adminHandler := apiconnect.NewAdminServiceHandler(
		NewAdminService(cafe),
		connect.WithInterceptors(middleware.LoggingInterceptor(nil), middleware.RequireAuth(jwtManager)),
	)
	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, slog.Default()),
		connect.WithInterceptors(middleware.LoggingInterceptor(nil), middleware.OptionalAuth(jwtManager)),
	)

	mux := http.NewServeMux()
	mux.Handle(posPath, posHandler)
	mux.Handle(adminPath, adminHandler)
	mux.Handle(authPath, authHandler)

	server := httptest.NewServer(mux)

	ts := &testServer{
		pos:   apiconnect.NewPosServiceClient(http.DefaultClient, server.URL),
		admin: apiconnect.NewAdminServiceClient(http.DefaultClient, server.URL),
		auth:  apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		cafe:  cafe,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return ts, cleanup
}

// login returns a bearer token for the seeded admin.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	resp, err := ts.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Username: "admin",
		Password: "123",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return resp.Msg.Token
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code: expected %v, got %v (%v)", want, got, err)
	}
}
