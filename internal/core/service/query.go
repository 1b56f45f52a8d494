package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

// QueryStatus is the observable state of a Query.
type QueryStatus string

const (
	QueryIdle    QueryStatus = "idle"
	QueryPending QueryStatus = "pending"
	QueryError   QueryStatus = "error"
	QuerySuccess QueryStatus = "success"
)

// QueryState is a snapshot of a Query. Data holds the last successful result
// and survives a later failure.
type QueryState[T any] struct {
	Status    QueryStatus
	Data      []T
	Err       error
	FetchedAt time.Time
}

// Loaded reports whether a fetch has ever succeeded.
func (s QueryState[T]) Loaded() bool {
	return !s.FetchedAt.IsZero()
}

// Query is an explicit fetch with pending, error and data states. It does
// not cache across Reset and never retries.
type Query[T any] struct {
	name  string
	fetch func(context.Context) ([]T, error)

	mu         sync.Mutex
	state      QueryState[T]
	generation uint64
}

func NewQuery[T any](name string, fetch func(context.Context) ([]T, error)) *Query[T] {
	return &Query[T]{
		name:  name,
		fetch: fetch,
		state: QueryState[T]{Status: QueryIdle},
	}
}

// Refresh runs the fetch and returns the resulting state. A result that
// arrives after Reset or after a newer Refresh started is discarded.
func (q *Query[T]) Refresh(ctx context.Context) QueryState[T] {
	q.mu.Lock()
	q.generation++
	gen := q.generation
	q.state.Status = QueryPending
	q.mu.Unlock()

	start := time.Now()
	data, err := q.fetch(ctx)
	result := string(QuerySuccess)
	if err != nil {
		result = string(QueryError)
	}
	metrics.QueryDuration.WithLabelValues(q.name, result).Observe(time.Since(start).Seconds())

	q.mu.Lock()
	defer q.mu.Unlock()

	if gen != q.generation {
		return q.snapshot()
	}
	if err != nil {
		q.state.Status = QueryError
		q.state.Err = err
	} else {
		q.state = QueryState[T]{
			Status:    QuerySuccess,
			Data:      data,
			FetchedAt: time.Now(),
		}
	}
	return q.snapshot()
}

// State returns the current snapshot without fetching.
func (q *Query[T]) State() QueryState[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// Reset drops data and errors and abandons any fetch in flight.
func (q *Query[T]) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.generation++
	q.state = QueryState[T]{Status: QueryIdle}
}

func (q *Query[T]) snapshot() QueryState[T] {
	s := q.state
	s.Data = slices.Clone(s.Data)
	return s
}
