package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnect_PasswordAuth(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("hunter2")

	if _, err := Connect(context.Background(), Config{Addr: mr.Addr()}); err == nil {
		t.Fatalf("expected ping to fail without credentials")
	}

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "hunter2"})
	if err != nil {
		t.Fatalf("connect with password: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("authenticated ping: %v", err)
	}
}

func TestConnect_RefusesUnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr}); err == nil {
		t.Fatalf("expected connect to a closed server to fail")
	}
}
