// Package journal keeps an append-only record of the operations applied to
// the voting service. Entries are queued in memory by the service and
// written to the database in batches, so that recording never blocks nor
// fails a voting operation.
package journal

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Vicen621-Facultad/votacion/db"
	"github.com/Vicen621-Facultad/votacion/db/prefixeddb"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/enriquebris/goconcurrentqueue"
	"github.com/ethereum/go-ethereum/common"
)

// Kind identifies the operation recorded by an Entry.
type Kind string

const (
	UserRegistered     Kind = "user.registered"
	UserApproved       Kind = "user.approved"
	ElectionCreated    Kind = "election.created"
	CandidateNominated Kind = "candidate.nominated"
	VoterNominated     Kind = "voter.nominated"
	CandidateApproved  Kind = "candidate.approved"
	VoterApproved      Kind = "voter.approved"
	// VoteCast entries name the voter only, never the chosen candidate.
	VoteCast        Kind = "vote.cast"
	AdminChanged    Kind = "admin.changed"
	ReporterChanged Kind = "reporter.changed"
)

// DefaultQueueSize is the number of entries that can wait for a flush.
const DefaultQueueSize = 10 << 10

// ErrQueueFull is returned by Push when the entry cannot be queued.
var ErrQueueFull = fmt.Errorf("journal queue is full")

// Entry is a recorded operation. Subject and Election are only meaningful
// for the kinds that refer to them.
type Entry struct {
	Seq      uint64         `json:"seq"`
	Kind     Kind           `json:"kind"`
	Actor    common.Address `json:"actor"`
	Subject  common.Address `json:"subject"`
	Election uint32         `json:"election"`
	Time     uint64         `json:"time"`
}

var (
	lastSeqKey    = []byte("last")
	entriesPrefix = []byte("e/")
)

// Journal queues entries and stores them under the journal/ prefix.
type Journal struct {
	queue *goconcurrentqueue.FixedFIFO
	db    db.Database

	// flushMu serializes flushes, so sequence numbers follow queue order.
	flushMu sync.Mutex
	lastSeq uint64
	// entries dequeued by a failed flush, stored first by the next one
	retry []Entry
}

// New opens the journal stored in database, with room for size queued entries.
func New(database db.Database, size int) (*Journal, error) {
	j := &Journal{
		queue: goconcurrentqueue.NewFixedFIFO(size),
		db:    prefixeddb.NewPrefixedDatabase(database, []byte("journal/")),
	}
	v, err := j.db.Get(lastSeqKey)
	switch {
	case errors.Is(err, db.ErrKeyNotFound):
	case err != nil:
		return nil, err
	case len(v) != 8:
		return nil, fmt.Errorf("corrupted journal sequence")
	default:
		j.lastSeq = binary.BigEndian.Uint64(v)
	}
	journalQueueCapacity.Set(float64(size))
	return j, nil
}

// Push queues e. The sequence number is assigned when the entry is flushed.
func (j *Journal) Push(e Entry) error {
	if err := j.queue.Enqueue(e); err != nil {
		journalDropped.Inc()
		return fmt.Errorf("%w: %v", ErrQueueFull, err)
	}
	journalQueued.Set(float64(j.queue.GetLen()))
	return nil
}

// Pending returns the number of entries waiting to be stored.
func (j *Journal) Pending() int {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()
	return len(j.retry) + j.queue.GetLen()
}

// LastSeq returns the sequence number of the last stored entry, 0 if none.
func (j *Journal) LastSeq() uint64 {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()
	return j.lastSeq
}

// Flush writes every queued entry to the database in a single transaction
// and returns how many were written. If the write fails the entries are kept,
// in order, for the next Flush.
func (j *Journal) Flush() (n int, err error) {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	entries := j.retry
	j.retry = nil
	for {
		v, err := j.queue.Dequeue()
		if err != nil {
			// empty queue
			break
		}
		entries = append(entries, v.(Entry))
	}
	journalQueued.Set(float64(j.queue.GetLen()))
	if len(entries) == 0 {
		return 0, nil
	}
	defer func() {
		if err != nil {
			j.retry = entries
		}
	}()

	wTx := j.db.WriteTx()
	defer wTx.Discard()
	seq := j.lastSeq
	for i := range entries {
		seq++
		entries[i].Seq = seq
		var b []byte
		if b, err = encodeEntry(entries[i]); err != nil {
			return 0, err
		}
		if err = wTx.Set(seqKey(seq), b); err != nil {
			return 0, err
		}
	}
	var last [8]byte
	binary.BigEndian.PutUint64(last[:], seq)
	if err = wTx.Set(lastSeqKey, last[:]); err != nil {
		return 0, err
	}
	if err = wTx.Commit(); err != nil {
		return 0, fmt.Errorf("cannot store %d journal entries: %w", len(entries), err)
	}
	j.lastSeq = seq
	journalStored.Add(float64(len(entries)))
	return len(entries), nil
}

// Run flushes the queue every interval until ctx is done, then flushes once
// more. It is blocking and meant to be called in a goroutine.
func (j *Journal) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := j.Flush(); err != nil {
				log.Warnw("cannot flush journal", "err", err, "pending", j.Pending())
			}
		case <-ctx.Done():
			n, err := j.Flush()
			if err != nil {
				log.Warnw("cannot flush journal", "err", err, "pending", j.Pending())
			}
			log.Debugw("journal stopped", "flushed", n, "lastSeq", j.LastSeq())
			return
		}
	}
}

// Entries returns up to limit stored entries with a sequence number of at
// least from, in order. A limit of zero or less returns them all.
func (j *Journal) Entries(from uint64, limit int) ([]Entry, error) {
	var entries []Entry
	var derr error
	if err := j.db.Iterate(entriesPrefix, func(k, v []byte) bool {
		if len(k) != 8 || binary.BigEndian.Uint64(k) < from {
			return true
		}
		e, err := decodeEntry(v)
		if err != nil {
			derr = err
			return false
		}
		entries = append(entries, e)
		return limit <= 0 || len(entries) < limit
	}); err != nil {
		return nil, err
	}
	return entries, derr
}

func seqKey(seq uint64) []byte {
	k := make([]byte, len(entriesPrefix)+8)
	copy(k, entriesPrefix)
	binary.BigEndian.PutUint64(k[len(entriesPrefix):], seq)
	return k
}
