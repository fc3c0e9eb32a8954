package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	"finbook/pkg/log"
)

type stubTaskSource struct {
	mu       sync.Mutex
	due      []model.ScheduledTask
	executed []string
	failIDs  map[string]bool

	block chan struct{} // when set, Execute blocks until closed
}

func (s *stubTaskSource) ListDue(_ context.Context, _ time.Time, _ int) ([]model.ScheduledTask, error) {
	return s.due, nil
}

func (s *stubTaskSource) Execute(_ context.Context, task model.ScheduledTask, _ time.Time) (scheduledtask.ExecuteOutput, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIDs[task.ID] {
		return scheduledtask.ExecuteOutput{}, errors.New("boom")
	}
	s.executed = append(s.executed, task.ID)
	return scheduledtask.ExecuteOutput{Task: task}, nil
}

func (s *stubTaskSource) PurgeLogsBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (s *stubTaskSource) executedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.executed...)
}

func task(id string) model.ScheduledTask {
	return model.ScheduledTask{ID: id, UserID: "user-1", Type: model.TaskTypeExpense, Amount: 10}
}

func newTestPoller(src *stubTaskSource) *Poller {
	return New(log.Init(log.ZapConfig{}), src, nil, nil, Config{})
}

func TestTick_ExecutesAllDue(t *testing.T) {
	src := &stubTaskSource{due: []model.ScheduledTask{task("a"), task("b"), task("c")}}
	p := newTestPoller(src)

	p.Tick(context.Background())

	if got := src.executedIDs(); len(got) != 3 {
		t.Fatalf("executed %v, want 3 tasks", got)
	}
}

func TestTick_FailureIsolation(t *testing.T) {
	src := &stubTaskSource{
		due:     []model.ScheduledTask{task("a"), task("bad"), task("c")},
		failIDs: map[string]bool{"bad": true},
	}
	p := newTestPoller(src)

	p.Tick(context.Background())

	got := src.executedIDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("executed %v, want [a c]", got)
	}
}

func TestTick_SkipsWhileRunning(t *testing.T) {
	src := &stubTaskSource{
		due:   []model.ScheduledTask{task("slow")},
		block: make(chan struct{}),
	}
	p := newTestPoller(src)

	done := make(chan struct{})
	go func() {
		p.Tick(context.Background())
		close(done)
	}()

	// Wait for the first tick to take the guard.
	for !p.running.Load() {
		time.Sleep(time.Millisecond)
	}

	p.Tick(context.Background()) // must return immediately without executing

	close(src.block)
	<-done

	if got := src.executedIDs(); len(got) != 1 {
		t.Fatalf("executed %v, want exactly 1 run", got)
	}
	if p.running.Load() {
		t.Error("running guard not released")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	src := &stubTaskSource{}
	p := newTestPoller(src)
	p.cfg.PollInterval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
