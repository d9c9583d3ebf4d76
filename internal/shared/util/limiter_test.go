package util

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllow(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow(1) || !l.Allow(1) {
		t.Fatal("burst tokens should be available immediately")
	}
	if l.Allow(1) {
		t.Fatal("third immediate event should be denied")
	}
}

func TestLimiterWait(t *testing.T) {
	l := NewLimiter(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.Wait(ctx, 1); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
}

func TestLimiterWaitCancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if !l.Allow(1) {
		t.Fatal("first token should be available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, 1); err == nil {
		t.Fatal("expected Wait to fail once the context expires")
	}
}
