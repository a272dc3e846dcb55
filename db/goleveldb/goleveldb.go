package goleveldb

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Vicen621-Facultad/votacion/db"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB implements the db.Database interface on top of goleveldb.
type LevelDB struct {
	db *leveldb.DB
}

// Ensure that LevelDB implements the db.Database interface
var _ db.Database = (*LevelDB)(nil)

// New returns a LevelDB which implements the db.Database interface
func New(opts db.Options) (*LevelDB, error) {
	ldb, err := leveldb.OpenFile(opts.Path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("could not open leveldb: %w", err)
	}
	return &LevelDB{
		db: ldb,
	}, nil
}

// Close closes the LevelDB
func (d *LevelDB) Close() error {
	return d.db.Close()
}

// WriteTx returns a db.WriteTx
func (d *LevelDB) WriteTx() db.WriteTx {
	return &WriteTx{
		db:    d.db,
		batch: new(leveldb.Batch),
		mem:   make(map[string][]byte),
	}
}

// Get implements the db.Database.Get interface method
func (d *LevelDB) Get(key []byte) ([]byte, error) {
	val, err := d.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Iterate implements the db.Database.Iterate interface method
func (d *LevelDB) Iterate(prefix []byte, callback func(key, value []byte) bool) error {
	iter := d.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		if !callback(iter.Key()[len(prefix):], iter.Value()) {
			break
		}
	}
	return iter.Error()
}

// Compact implements the db.Database.Compact interface method.
func (d *LevelDB) Compact() error {
	return d.db.CompactRange(util.Range{})
}

// WriteTx implements the interface db.WriteTx for goleveldb. Writes are
// buffered in a leveldb batch and mirrored in memory so that reads within
// the transaction observe them. A nil value in mem marks a deletion.
type WriteTx struct {
	db    *leveldb.DB
	batch *leveldb.Batch

	mu   sync.RWMutex
	mem  map[string][]byte
	done bool
}

// check that WriteTx implements the db.WriteTx interface
var _ db.WriteTx = (*WriteTx)(nil)

// Get implements the db.WriteTx.Get interface method
func (tx *WriteTx) Get(k []byte) ([]byte, error) {
	tx.mu.RLock()
	val, ok := tx.mem[string(k)]
	tx.mu.RUnlock()
	if ok {
		if val == nil {
			return nil, db.ErrKeyNotFound
		}
		return bytes.Clone(val), nil
	}
	val, err := tx.db.Get(k, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, db.ErrKeyNotFound
	}
	return val, err
}

// Iterate implements the db.WriteTx.Iterate interface method. The pending
// writes are merged with the stored keys, keeping lexicographic order.
func (tx *WriteTx) Iterate(prefix []byte, callback func(k, v []byte) bool) error {
	merged := make(map[string][]byte)
	iter := tx.db.NewIterator(util.BytesPrefix(prefix), nil)
	for iter.Next() {
		merged[string(iter.Key())] = bytes.Clone(iter.Value())
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	tx.mu.RLock()
	for k, v := range tx.mem {
		if !bytes.HasPrefix([]byte(k), prefix) {
			continue
		}
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	tx.mu.RUnlock()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !callback([]byte(k)[len(prefix):], merged[k]) {
			break
		}
	}
	return nil
}

// Set implements the db.WriteTx.Set interface method
func (tx *WriteTx) Set(k, v []byte) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.batch.Put(k, v)
	// a nil value is reserved for deletions
	tx.mem[string(k)] = append([]byte{}, v...)
	return nil
}

// Delete implements the db.WriteTx.Delete interface method
func (tx *WriteTx) Delete(k []byte) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.batch.Delete(k)
	tx.mem[string(k)] = nil
	return nil
}

// Commit implements the db.WriteTx.Commit interface method
func (tx *WriteTx) Commit() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return fmt.Errorf("cannot commit leveldb tx: already committed or discarded")
	}
	tx.done = true
	return tx.db.Write(tx.batch, &opt.WriteOptions{Sync: true})
}

// Discard implements the db.WriteTx.Discard interface method
func (tx *WriteTx) Discard() {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.batch.Reset()
	tx.mem = make(map[string][]byte)
	tx.done = true
}
