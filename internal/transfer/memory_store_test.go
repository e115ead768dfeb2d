package transfer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMemoryLogStoreLifecycle(t *testing.T) {
	store := NewMemoryLogStore()
	ctx := context.Background()

	lg, err := store.Create(ctx, Log{
		FromAccountID:     1001,
		ToAccountID:       1002,
		Amount:            decimal.NewFromInt(500),
		RequestedCurrency: "SGD",
		Status:            StatusPending,
	})
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if lg.ID == 0 {
		t.Fatal("expected assigned log id")
	}

	if err := store.UpdateStatus(ctx, lg.ID, StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	// Terminal states accept no further transition.
	if err := store.UpdateStatus(ctx, lg.ID, StatusFailed); err == nil {
		t.Fatal("expected update of terminal log to fail")
	}

	if err := store.UpdateStatus(ctx, 42, StatusFailed); err == nil {
		t.Fatal("expected update of unknown log to fail")
	}
}

func TestMemoryLogStoreListByAccount(t *testing.T) {
	store := NewMemoryLogStore()
	ctx := context.Background()

	// 1001 appears once as source and once as destination; 3003 never.
	store.Create(ctx, Log{FromAccountID: 1001, ToAccountID: 1002, Status: StatusPending})
	store.Create(ctx, Log{FromAccountID: 1002, ToAccountID: 1001, Status: StatusPending})
	store.Create(ctx, Log{FromAccountID: 2001, ToAccountID: 2002, Status: StatusPending})

	logs, err := store.ListByAccount(ctx, 1001)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs for account 1001, got %d", len(logs))
	}

	logs, err = store.ListByAccount(ctx, 3003)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs for account 3003, got %d", len(logs))
	}
}
