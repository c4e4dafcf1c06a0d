package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/kvutil"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/natsutil"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

const (
	// BackendKV is the backend name reported by KV.
	BackendKV = "kv"

	// DefaultBucket is the KV bucket used when KVConfig.Bucket is empty.
	DefaultBucket = "montepi-runs"

	keyPrefix = "run."
)

// KVConfig configures the JetStream KV journal.
type KVConfig struct {
	// Bucket is the KV bucket name.
	//
	// Default: "montepi-runs"
	Bucket string `yaml:"bucket"`

	// TTL expires entries after the given age. Zero keeps entries forever.
	TTL time.Duration `yaml:"ttl"`

	// Replicas is the bucket replication factor.
	//
	// Default: 1
	Replicas int `yaml:"replicas"`

	// OpTimeout bounds each KV operation.
	//
	// Default: 5s
	OpTimeout time.Duration `yaml:"op_timeout"`
}

func (c *KVConfig) setDefaults() {
	if c.Bucket == "" {
		c.Bucket = DefaultBucket
	}
	if c.Replicas == 0 {
		c.Replicas = 1
	}
	if c.OpTimeout == 0 {
		c.OpTimeout = 5 * time.Second
	}
}

// KV stores journal entries in a NATS JetStream KeyValue bucket.
//
// Each entry is stored under "run.<RunID>" as JSON.
type KV struct {
	kv  jetstream.KeyValue
	cfg KVConfig
}

var _ types.Journal = (*KV)(nil)

// NewKV opens (or creates) the journal bucket.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - nc: Connected NATS client
//   - cfg: Bucket settings, zero fields take defaults
//
// Returns:
//   - *KV: Journal ready for Append
//   - error: If JetStream is unavailable or the bucket cannot be opened
//
// Example:
//
//	nc, _ := nats.Connect(nats.DefaultURL)
//	j, err := journal.NewKV(ctx, nc, journal.KVConfig{TTL: 24 * time.Hour})
//	est := montecarlo.NewEstimator(&cfg, montecarlo.WithJournal(j))
func NewKV(ctx context.Context, nc *nats.Conn, cfg KVConfig) (*KV, error) {
	cfg.setDefaults()

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", natsutil.Classify(err))
	}

	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "montepi run journal",
		History:     1,
		TTL:         cfg.TTL,
		Replicas:    cfg.Replicas,
	}, 0)
	if err != nil {
		return nil, natsutil.Classify(err)
	}

	return &KV{kv: kv, cfg: cfg}, nil
}

// Backend returns "kv".
func (j *KV) Backend() string {
	return BackendKV
}

// Bucket returns the bucket name.
func (j *KV) Bucket() string {
	return j.cfg.Bucket
}

// Key returns the KV key for a run ID.
func Key(runID string) string {
	return keyPrefix + runID
}

// Append stores entry under run.<RunID>, replacing any previous entry with the same ID.
func (j *KV) Append(ctx context.Context, entry types.JournalEntry) error {
	if entry.RunID == "" {
		return fmt.Errorf("%w: entry has no run id", types.ErrJournalWrite)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}

	ctx, cancel := context.WithTimeout(ctx, j.cfg.OpTimeout)
	defer cancel()

	if _, err := j.kv.Put(ctx, Key(entry.RunID), data); err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, natsutil.Classify(err))
	}

	return nil
}

// Get returns the entry for runID.
func (j *KV) Get(ctx context.Context, runID string) (types.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, j.cfg.OpTimeout)
	defer cancel()

	kve, err := j.kv.Get(ctx, Key(runID))
	if err != nil {
		return types.JournalEntry{}, fmt.Errorf("%w: %w", types.ErrJournalRead, natsutil.Classify(err))
	}

	var e types.JournalEntry
	if err := json.Unmarshal(kve.Value(), &e); err != nil {
		return types.JournalEntry{}, fmt.Errorf("%w: %s: %w", types.ErrJournalRead, kve.Key(), err)
	}

	return e, nil
}

// Entries returns every stored entry ordered by timestamp.
func (j *KV) Entries(ctx context.Context) ([]types.JournalEntry, error) {
	keys, err := kvutil.Keys(ctx, j.kv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrJournalRead, natsutil.Classify(err))
	}

	entries := make([]types.JournalEntry, 0, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		e, err := j.Get(ctx, strings.TrimPrefix(key, keyPrefix))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Timestamp.Before(entries[b].Timestamp)
	})

	return entries, nil
}
