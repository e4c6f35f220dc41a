package grpc

import (
	"context"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestServeHealthRequiresAddr(t *testing.T) {
	if err := ServeHealth(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty addr")
	}
}

func TestServeHealthServesAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	// High loopback port unlikely to collide; ServeHealth does not report the
	// bound address, so the probe needs a fixed one.
	addr := "127.0.0.1:19911"
	done := make(chan error, 1)
	go func() {
		done <- ServeHealth(ctx, addr)
	}()

	conn, err := gogrpc.NewClient(addr, gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial health: %v", err)
	}
	defer conn.Close()

	waitCtx, waitCancel := context.WithTimeout(ctx, 5*time.Second)
	defer waitCancel()
	if err := WaitForHealth(waitCtx, conn, "", nil); err != nil {
		t.Fatalf("wait for health: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve health returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("health server did not stop")
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}
