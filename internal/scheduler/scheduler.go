// Package scheduler runs a fixed task list once per timeslice.
//
// Scheduling is cooperative: tasks run to completion in registration order
// and must return well within one period. A task that overruns delays the
// next slice; missed slices are not made up.
package scheduler

import (
	"context"
	"errors"
	"time"
)

// Clock is a free-running millisecond counter.
type Clock interface {
	// Millis returns the counter. It wraps around.
	Millis() uint32
	// Sleep pauses the caller for about d.
	Sleep(d time.Duration)
}

// Task is one entry of the task list.
type Task struct {
	Name string
	Run  func(ctx context.Context)
}

// Scheduler drives the task list.
type Scheduler struct {
	clock     Clock
	period    uint32
	tasks     []Task
	primed    bool
	lastEvent uint32
	slices    uint32
}

var (
	// errPeriod is returned for a period below one millisecond.
	errPeriod = errors.New("period must be at least 1ms")
	// errNoTasks is returned for an empty task list.
	errNoTasks = errors.New("no tasks")
)

// New creates a scheduler with a fixed period and task order.
func New(clock Clock, period time.Duration, tasks ...Task) (*Scheduler, error) {
	if period < time.Millisecond {
		return nil, errPeriod
	}

	if len(tasks) == 0 {
		return nil, errNoTasks
	}

	return &Scheduler{
		clock:  clock,
		period: uint32(period / time.Millisecond),
		tasks:  append([]Task(nil), tasks...),
	}, nil
}

// WaitEvent blocks until one period has passed since the previous event.
// The first call returns at once and only records the reference count.
func (s *Scheduler) WaitEvent() {
	if s.primed {
		for {
			elapsed := s.clock.Millis() - s.lastEvent
			if elapsed >= s.period {
				break
			}

			s.clock.Sleep(time.Duration(s.period-elapsed) * time.Millisecond)
		}
	} else {
		s.primed = true
	}

	s.lastEvent = s.clock.Millis()
	s.slices++
}

// RunOnce waits for the next slice and runs every task once.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.WaitEvent()

	for _, task := range s.tasks {
		task.Run(ctx)
	}
}

// Run executes slices until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s.RunOnce(ctx)
	}
}

// Slices returns the number of slices started so far.
func (s *Scheduler) Slices() uint32 {
	return s.slices
}

// Tasks returns the task names in execution order.
func (s *Scheduler) Tasks() []string {
	names := make([]string, 0, len(s.tasks))
	for _, task := range s.tasks {
		names = append(names, task.Name)
	}

	return names
}
