package badger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/logger"
)

const sequenceBandwidth = 100

// Collection key prefixes.
const (
	channelPrefix  = "chan"
	documentPrefix = "doc"
	activityPrefix = "act"
)

// Backend wraps a BadgerDB instance and provides the record stores.
type Backend struct {
	db *badger.DB

	mu        sync.Mutex
	sequences map[string]*badger.Sequence
}

// loggerAdapter routes badger's logs through the relay logger.
type loggerAdapter struct{}

var _ badger.Logger = loggerAdapter{}

func (loggerAdapter) Errorf(msg string, items ...any)   { logger.Error("badger: "+msg, items...) }
func (loggerAdapter) Warningf(msg string, items ...any) { logger.Warn("badger: "+msg, items...) }
func (loggerAdapter) Infof(msg string, items ...any)    { logger.Debug("badger: "+msg, items...) }
func (loggerAdapter) Debugf(msg string, items ...any)   { logger.Debug("badger: "+msg, items...) }

// OpenBackend opens a BadgerDB database in dir, creating it if needed.
// With inMemory set, dir is ignored and nothing touches disk.
func OpenBackend(dir string, inMemory bool) (*Backend, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("checking data directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		opts = badger.DefaultOptions(dir)
	}

	opts.Logger = loggerAdapter{}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger: %w", err)
	}
	logger.Debug("badger store opened (in-memory=%t)", inMemory)

	return &Backend{db: db, sequences: make(map[string]*badger.Sequence)}, nil
}

// Close releases the sequences and closes the database.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var errs []error
	for _, seq := range b.sequences {
		errs = append(errs, seq.Release())
	}
	b.sequences = map[string]*badger.Sequence{}
	errs = append(errs, b.db.Close())
	return errors.Join(errs...)
}

// IsClosed returns true if the database is closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// ChannelStore returns a ChannelStore backed by this database.
func (b *Backend) ChannelStore() driven.ChannelStore {
	return &channelStore{records: &records[domain.Channel]{backend: b, prefix: channelPrefix}}
}

// DocumentStore returns a DocumentStore backed by this database.
func (b *Backend) DocumentStore() driven.DocumentStore {
	return &documentStore{records: &records[domain.Document]{backend: b, prefix: documentPrefix}}
}

// ActivityStore returns an ActivityStore backed by this database.
func (b *Backend) ActivityStore() driven.ActivityStore {
	return &activityStore{records: &records[domain.ActivityEvent]{backend: b, prefix: activityPrefix}}
}

// withTx executes fn within a transaction and commits writes on success.
func (b *Backend) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	if b.db.IsClosed() {
		return domain.ErrStoreClosed
	}
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	if err := fn(tx); err != nil {
		return err
	}
	if isWrite {
		return tx.Commit()
	}
	return nil
}

// nextPosition returns the next position in the named collection.
func (b *Backend) nextPosition(prefix string) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	seq, ok := b.sequences[prefix]
	if !ok {
		var err error
		seq, err = b.db.GetSequence([]byte(prefix+"seq"), sequenceBandwidth)
		if err != nil {
			return 0, fmt.Errorf("getting sequence: %w", err)
		}
		b.sequences[prefix] = seq
	}
	return seq.Next()
}

// envelope is the stored value of a record.
type envelope[T any] struct {
	Position uint64 `json:"pos"`
	Record   T      `json:"rec"`
}

// records is a JSON record collection under one key prefix.
type records[T any] struct {
	backend *Backend
	prefix  string
}

func (r *records[T]) key(id string) []byte {
	return []byte(r.prefix + ":" + id)
}

// put stores record under id. Existing records keep their position.
func (r *records[T]) put(id string, record T) error {
	return r.backend.withTx(func(tx *badger.Txn) error {
		pos, err := r.position(tx, id)
		if err != nil {
			return err
		}
		data, err := json.Marshal(envelope[T]{Position: pos, Record: record})
		if err != nil {
			return fmt.Errorf("marshalling %s record: %w", r.prefix, err)
		}
		return tx.Set(r.key(id), data)
	}, true)
}

// position returns the stored position of id, or a fresh one.
func (r *records[T]) position(tx *badger.Txn, id string) (uint64, error) {
	item, err := tx.Get(r.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.backend.nextPosition(r.prefix)
	}
	if err != nil {
		return 0, err
	}
	var existing envelope[T]
	if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &existing) }); err != nil {
		return r.backend.nextPosition(r.prefix)
	}
	return existing.Position, nil
}

func (r *records[T]) get(id string) (*T, error) {
	var env envelope[T]
	err := r.backend.withTx(func(tx *badger.Txn) error {
		item, err := tx.Get(r.key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &env); err != nil {
				return fmt.Errorf("%w: %s %s: %v", domain.ErrCorruptRecord, r.prefix, id, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return &env.Record, nil
}

func (r *records[T]) remove(id string) error {
	return r.backend.withTx(func(tx *badger.Txn) error {
		return tx.Delete(r.key(id))
	}, true)
}

// all returns every record ordered by position.
// Any undecodable record fails the whole collection with ErrCorruptRecord.
func (r *records[T]) all() ([]T, error) {
	var envelopes []envelope[T]
	err := r.backend.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(r.prefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			var env envelope[T]
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &env)
			})
			if err != nil {
				return fmt.Errorf("%w: key %s: %v", domain.ErrCorruptRecord, item.Key(), err)
			}
			envelopes = append(envelopes, env)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(envelopes, func(a, b envelope[T]) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})

	result := make([]T, len(envelopes))
	for i := range envelopes {
		result[i] = envelopes[i].Record
	}
	return result, nil
}
