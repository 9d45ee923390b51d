package observability

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/sprawl/pkg/grid"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGrowthHooks{}
	g.OnGrowStart(ctx, 128)
	g.OnStep(ctx, 1, grid.C(1, 0), 4)
	g.OnGrowComplete(ctx, 129, time.Millisecond, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, 3, 4)
	r.OnRenderComplete(ctx, 6, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Growth().(NoopGrowthHooks); !ok {
		t.Error("Growth() should return NoopGrowthHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customGrowth := &testGrowthHooks{}
	SetGrowthHooks(customGrowth)
	if Growth() != customGrowth {
		t.Error("SetGrowthHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Growth().(NoopGrowthHooks); !ok {
		t.Error("Reset() should restore NoopGrowthHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGrowthHooks{}
	SetGrowthHooks(custom)
	SetGrowthHooks(nil)
	if Growth() != custom {
		t.Error("SetGrowthHooks(nil) should keep existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testGrowthHooks{}
	SetGrowthHooks(h)

	ctx := context.Background()
	Growth().OnGrowStart(ctx, 2)
	Growth().OnStep(ctx, 1, grid.C(0, 1), 4)
	Growth().OnStep(ctx, 2, grid.C(0, 2), 6)
	Growth().OnGrowComplete(ctx, 3, time.Millisecond, nil)

	if h.starts != 1 || h.steps != 2 || h.completes != 1 {
		t.Errorf("events = start:%d step:%d complete:%d, want 1/2/1", h.starts, h.steps, h.completes)
	}
}

type testGrowthHooks struct {
	starts, steps, completes int
}

func (h *testGrowthHooks) OnGrowStart(context.Context, int)             { h.starts++ }
func (h *testGrowthHooks) OnStep(context.Context, int, grid.Coord, int) { h.steps++ }
func (h *testGrowthHooks) OnGrowComplete(context.Context, int, time.Duration, error) {
	h.completes++
}

type testRenderHooks struct{}

func (testRenderHooks) OnRenderStart(context.Context, int, int)                     {}
func (testRenderHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}
