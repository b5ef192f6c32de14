package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the actor id, so one actor's trail is always written in order.
// Persistence happens off the request path; a full buffer drops the entry
// rather than stalling the request.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for its actor's worker. Never blocks: audit is
// best-effort housekeeping and must not slow down request handling.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	select {
	case d.workers[d.shardIndex(entry.ActorID)] <- entry:
	default:
		d.log.Warn().
			Str("actor_id", entry.ActorID).
			Str("action", entry.Action).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
			err := d.repo.Insert(insertCtx, &entry)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("actor_id", entry.ActorID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
