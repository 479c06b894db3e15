package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyName     = errors.New("health check name is empty")
	ErrNilCheck      = errors.New("health check func is nil")
	ErrDuplicateName = errors.New("health check already registered")
)

// Check probes one dependency. It must honour ctx cancellation.
type Check func(ctx context.Context) Result

// Registration is a named check with optional tags for filtering.
type Registration struct {
	Name  string
	Check Check
	Tags  []string
}

// Predicate selects which registrations take part in a run.
type Predicate func(Registration) bool

// WithTag selects registrations carrying tag.
func WithTag(tag string) Predicate {
	return func(r Registration) bool {
		return slices.Contains(r.Tags, tag)
	}
}

// Registry holds the health checks of the service.
type Registry struct {
	mu    sync.RWMutex
	regs  []Registration
	names map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register adds a named check.
func (r *Registry) Register(name string, check Check, tags ...string) error {
	if name == "" {
		return ErrEmptyName
	}
	if check == nil {
		return fmt.Errorf("%w: %s", ErrNilCheck, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.names[name] = struct{}{}
	r.regs = append(r.regs, Registration{Name: name, Check: check, Tags: slices.Clone(tags)})
	return nil
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.regs)
}

// Run executes every registration accepted by pred (all when pred is nil)
// concurrently and aggregates the results.
func (r *Registry) Run(ctx context.Context, pred Predicate) *Report {
	r.mu.RLock()
	regs := make([]Registration, 0, len(r.regs))
	for _, reg := range r.regs {
		if pred == nil || pred(reg) {
			regs = append(regs, reg)
		}
	}
	r.mu.RUnlock()

	start := time.Now()
	entries := make([]Entry, len(regs))

	var eg errgroup.Group
	for i, reg := range regs {
		eg.Go(func() error {
			entries[i] = runCheck(ctx, reg)
			return nil
		})
	}
	_ = eg.Wait()

	report := &Report{
		Status:        Healthy,
		TotalDuration: time.Since(start),
		Entries:       make(map[string]Entry, len(regs)),
	}
	for i, reg := range regs {
		entry := entries[i]
		report.Entries[reg.Name] = entry
		if entry.Status < report.Status {
			report.Status = entry.Status
		}
	}
	return report
}

func runCheck(ctx context.Context, reg Registration) (entry Entry) {
	start := time.Now()
	entry.Tags = reg.Tags

	defer func() {
		entry.Duration = time.Since(start)
		if rec := recover(); rec != nil {
			entry.Status = Unhealthy
			entry.Description = "health check panicked"
			entry.Err = fmt.Errorf("panic: %v", rec)
			slog.Error("health check panic", "name", reg.Name, "panic", rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		entry.Status = Unhealthy
		entry.Description = "health check cancelled"
		entry.Err = err
		return entry
	}

	res := reg.Check(ctx)
	entry.Status = res.Status
	entry.Description = res.Description
	entry.Err = res.Err
	entry.Data = res.Data
	return entry
}
