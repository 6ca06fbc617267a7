package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)
	logger := zerolog.Nop()

	client, err := Connect(context.Background(), Options{Addr: server.Addr(), MaxRetries: 1}, &logger)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET failed: %v", err)
	}
	if got := server.Exists("k"); !got {
		t.Error("expected key to be written to the server")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	logger := zerolog.Nop()

	_, err := Connect(context.Background(), Options{Addr: addr, MaxRetries: 1}, &logger)
	if err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
}
