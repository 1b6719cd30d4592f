package application

import (
	"context"
	"sync"
)

// Task is a handle on a running background loop.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newTask(cancel context.CancelFunc) *Task {
	return &Task{cancel: cancel, done: make(chan struct{})}
}

// Cancel asks the loop to stop. It does not wait; use Done or Wait.
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Wait() {
	<-t.done
}

func (t *Task) finish() {
	t.once.Do(func() {
		t.cancel()
		close(t.done)
	})
}
