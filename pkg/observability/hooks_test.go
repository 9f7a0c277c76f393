package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopTransformHooks{}
	h.OnExplodeStart(ctx, "nb.ipynb.exploded", 3)
	h.OnCellExploded(ctx, "cell-1", 2)
	h.OnExplodeComplete(ctx, "nb.ipynb.exploded", 3, time.Second, nil)
	h.OnRecombineStart(ctx, "nb.ipynb.exploded")
	h.OnCellRecombined(ctx, "cell-1", 2)
	h.OnRecombineComplete(ctx, "nb.ipynb.exploded", 3, time.Second, nil)
	h.OnFileWritten(ctx, "nb.ipynb.exploded/metadata.json", 2)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Transform().(NoopTransformHooks); !ok {
		t.Error("Transform() should return NoopTransformHooks by default")
	}

	custom := &testTransformHooks{}
	SetTransformHooks(custom)
	if Transform() != custom {
		t.Error("SetTransformHooks should set custom hooks")
	}

	Reset()
	if _, ok := Transform().(NoopTransformHooks); !ok {
		t.Error("Reset() should restore NoopTransformHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testTransformHooks{}
	SetTransformHooks(custom)

	// Setting nil should be ignored
	SetTransformHooks(nil)

	if Transform() != custom {
		t.Error("SetTransformHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testTransformHooks struct{ NoopTransformHooks }
