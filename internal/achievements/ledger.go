package achievements

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/lexiz/internal/store"
)

// Record keys of the two persisted collections.
const (
	EarnedKey = "achievements.earned"
	QueueKey  = "achievements.queue"
)

// Ledger owns the earned set and the pending notification queue. It is the
// only writer of both records; every award goes through TryAward so a queued
// notification always has a matching earned entry.
//
// Storage failures never reach callers: unreadable or corrupt records read as
// empty and failed writes are logged and dropped.
type Ledger struct {
	mu   sync.Mutex
	repo store.RecordRepo
	log  zerolog.Logger
	now  func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for storage warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithClock overrides the time source used for EarnedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a Ledger persisting to repo. A nil repo keeps state in memory.
func NewLedger(repo store.RecordRepo, opts ...Option) *Ledger {
	if repo == nil {
		repo = store.NewMemoryRepo()
	}
	l := &Ledger{
		repo: repo,
		log:  zerolog.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TryAward awards id if it is known and not yet earned. It returns the
// definition on a fresh award and nil otherwise.
func (l *Ledger) TryAward(ctx context.Context, id string) *Definition {
	def, ok := Lookup(id)
	if !ok {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var awarded *Definition
	err := l.repo.Update(ctx, func(tx store.RecordTx) error {
		earned := l.readEarned(ctx, tx)
		if slices.Contains(earned, id) {
			return nil
		}
		queue := l.readQueue(ctx, tx)

		earned = append(earned, id)
		queue = append(queue, Record{Definition: def, EarnedAt: l.now().UTC()})
		l.write(ctx, tx, EarnedKey, earned)
		l.write(ctx, tx, QueueKey, queue)

		awarded = &def
		return nil
	})
	if err != nil {
		l.log.Warn().Err(err).Str("achievement", id).Msg("award transaction failed")
	}
	if awarded != nil {
		l.log.Info().Str("achievement", id).Int("xp", def.XP).Msg("achievement earned")
	}
	return awarded
}

// CheckMetrics awards every achievement whose threshold m meets and returns
// the newly awarded ones in evaluation order. Safe to call on every update.
func (l *Ledger) CheckMetrics(ctx context.Context, m Metrics) []Definition {
	var awarded []Definition
	for _, th := range thresholds {
		if m.Value(th.Metric) < th.Min {
			continue
		}
		if def := l.TryAward(ctx, th.ID); def != nil {
			awarded = append(awarded, *def)
		}
	}
	return awarded
}

// DrainNext removes and returns the oldest pending notification, or nil when
// the queue is empty.
func (l *Ledger) DrainNext(ctx context.Context) *Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	var head *Record
	err := l.repo.Update(ctx, func(tx store.RecordTx) error {
		queue := l.readQueue(ctx, tx)
		if len(queue) == 0 {
			return nil
		}
		rec := queue[0]
		l.write(ctx, tx, QueueKey, queue[1:])
		head = &rec
		return nil
	})
	if err != nil {
		l.log.Warn().Err(err).Msg("drain transaction failed")
	}
	return head
}

// PendingCount returns the number of queued notifications.
func (l *Ledger) PendingCount(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.readQueue(ctx, l.repo))
}

// IsEarned reports whether id has been awarded.
func (l *Ledger) IsEarned(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Contains(l.readEarned(ctx, l.repo), id)
}

// AllEarned returns earned definitions in the order they were earned,
// skipping ids that no longer name a known definition.
func (l *Ledger) AllEarned(ctx context.Context) []Definition {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.earnedDefinitions(ctx, l.repo)
}

// Progress reports earned versus total catalog size.
func (l *Ledger) Progress(ctx context.Context) Progress {
	earned := len(l.AllEarned(ctx))
	total := len(catalog)
	p := Progress{Earned: earned, Total: total, Remaining: total - earned}
	if total > 0 {
		p.Percentage = int(math.Round(float64(earned) * 100 / float64(total)))
	}
	return p
}

// NextMilestones returns, per metric family, the lowest unearned threshold
// and how far m is from it. Families with every threshold earned are omitted.
func (l *Ledger) NextMilestones(ctx context.Context, m Metrics) []Milestone {
	l.mu.Lock()
	earned := l.readEarned(ctx, l.repo)
	l.mu.Unlock()

	var out []Milestone
	for _, metric := range AllMetrics() {
		for _, th := range thresholds {
			if th.Metric != metric || slices.Contains(earned, th.ID) {
				continue
			}
			def, ok := Lookup(th.ID)
			if !ok {
				continue
			}
			out = append(out, Milestone{
				Metric:     metric,
				Definition: def,
				Target:     th.Min,
				Current:    m.Value(metric),
			})
			break
		}
	}
	return out
}

// Reset wipes both the earned set and the notification queue.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.repo.Update(ctx, func(tx store.RecordTx) error {
		if err := tx.Delete(ctx, EarnedKey); err != nil {
			return err
		}
		return tx.Delete(ctx, QueueKey)
	})
}

func (l *Ledger) earnedDefinitions(ctx context.Context, r store.RecordTx) []Definition {
	ids := l.readEarned(ctx, r)
	defs := make([]Definition, 0, len(ids))
	for _, id := range ids {
		if def, ok := Lookup(id); ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// readEarned returns the earned ids in award order with duplicates dropped.
func (l *Ledger) readEarned(ctx context.Context, r store.RecordTx) []string {
	var ids []string
	if !l.read(ctx, r, EarnedKey, &ids) {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (l *Ledger) readQueue(ctx context.Context, r store.RecordTx) []Record {
	var queue []Record
	if !l.read(ctx, r, QueueKey, &queue) {
		return nil
	}
	return queue
}

// read decodes the record under key into v. Missing, unreadable and
// malformed records all report false.
func (l *Ledger) read(ctx context.Context, r store.RecordTx, key string, v any) bool {
	raw, err := r.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.log.Warn().Err(err).Str("key", key).Msg("read failed; treating as empty")
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("malformed record; treating as empty")
		return false
	}
	return true
}

func (l *Ledger) write(ctx context.Context, tx store.RecordTx, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("encode failed; record not saved")
		return
	}
	if err := tx.Put(ctx, key, raw); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("write failed; record not saved")
	}
}
