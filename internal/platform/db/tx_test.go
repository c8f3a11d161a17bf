package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestTxFromContext_Nil(t *testing.T) {
	tx := TxFromContext(context.Background())
	if tx != nil {
		t.Error("expected nil transaction on empty context")
	}
}

func TestTxFromContext_WithWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not-a-tx")
	tx := TxFromContext(ctx)
	if tx != nil {
		t.Error("expected nil when context value is wrong type")
	}
}

func TestStorageError_Message(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StorageError{Op: "commit", Err: cause}

	if err.Error() != "storage: commit: connection refused" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected StorageError to unwrap to its cause")
	}
}

func TestIsStorageError(t *testing.T) {
	se := &StorageError{Op: "begin", Err: errors.New("pool exhausted")}

	if !IsStorageError(se) {
		t.Error("expected true for a StorageError")
	}
	if !IsStorageError(fmt.Errorf("outer: %w", se)) {
		t.Error("expected true for a wrapped StorageError")
	}
	if IsStorageError(errors.New("plain")) {
		t.Error("expected false for a plain error")
	}
	if IsStorageError(nil) {
		t.Error("expected false for nil")
	}
}
