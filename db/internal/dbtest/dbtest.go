// Package dbtest holds the behaviour shared by every db.Database backend.
package dbtest

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/Vicen621-Facultad/votacion/db"
	qt "github.com/frankban/quicktest"
)

func TestWriteTx(t *testing.T, database db.Database) {
	wTx := database.WriteTx()

	if _, err := wTx.Get([]byte("a")); err != db.ErrKeyNotFound {
		t.Fatal(err)
	}

	err := wTx.Set([]byte("a"), []byte("b"))
	qt.Assert(t, err, qt.IsNil)

	v, err := wTx.Get([]byte("a"))
	qt.Assert(t, err, qt.IsNil)

	if !bytes.Equal(v, []byte("b")) {
		t.Errorf("expected v (%v) to be equal to %v", v, []byte("b"))
	}
	err = wTx.Commit()
	qt.Assert(t, err, qt.IsNil)

	// Discard should not give any problem
	wTx.Discard()

	// get value from a new tx after the previous commit
	wTx = database.WriteTx()
	v, err = wTx.Get([]byte("a"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, v, qt.DeepEquals, []byte("b"))

	// ensure that WriteTx can be passed into a function that accepts
	// a Reader, and that can be used
	useReader(t, wTx)
	useReader(t, database)

	err = wTx.Commit()
	qt.Assert(t, err, qt.IsNil)

	// a discarded tx leaves no trace
	wTx = database.WriteTx()
	qt.Assert(t, wTx.Set([]byte("discarded"), []byte("x")), qt.IsNil)
	wTx.Discard()
	_, err = database.Get([]byte("discarded"))
	qt.Assert(t, err, qt.ErrorIs, db.ErrKeyNotFound)
}

func useReader(t *testing.T, r db.Reader) {
	v, err := r.Get([]byte("a"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, v, qt.DeepEquals, []byte("b"))
}

func TestIterate(t *testing.T, d db.Database) {
	prefix0 := []byte("a")
	prefix0NumKeys := 20
	prefix1 := []byte("b")
	prefix1NumKeys := 30

	wTx := d.WriteTx()
	for i := 0; i < prefix0NumKeys; i++ {
		qt.Assert(t, wTx.Set(append(prefix0, []byte(strconv.Itoa(i))...), []byte(strconv.Itoa(i))), qt.IsNil)
	}
	for i := 0; i < prefix1NumKeys; i++ {
		qt.Assert(t, wTx.Set(append(prefix1, []byte(strconv.Itoa(i))...), []byte(strconv.Itoa(i))), qt.IsNil)
	}
	err := wTx.Commit()
	qt.Assert(t, err, qt.IsNil)

	noPrefixKeysFound := 0
	err = d.Iterate(nil, func(k, v []byte) bool {
		noPrefixKeysFound++
		return true
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, noPrefixKeysFound, qt.Equals, prefix0NumKeys+prefix1NumKeys)

	prefix0KeysFound := 0
	err = d.Iterate(prefix0, func(k, v []byte) bool {
		// keys come without the prefix, and the value was stored as the key suffix
		qt.Assert(t, k, qt.DeepEquals, v)
		prefix0KeysFound++
		return true
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, prefix0KeysFound, qt.Equals, prefix0NumKeys)

	prefix1KeysFound := 0
	var prev []byte
	err = d.Iterate(prefix1, func(k, v []byte) bool {
		if prev != nil {
			qt.Assert(t, bytes.Compare(prev, k) < 0, qt.IsTrue)
		}
		prev = append(prev[:0], k...)
		prefix1KeysFound++
		return true
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, prefix1KeysFound, qt.Equals, prefix1NumKeys)

	// stop early
	visited := 0
	err = d.Iterate(prefix1, func(k, v []byte) bool {
		visited++
		return visited < 5
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, visited, qt.Equals, 5)
}

func TestDeletePrefix(t *testing.T, d db.Database) {
	wTx := d.WriteTx()
	for i := 0; i < 10; i++ {
		qt.Assert(t, wTx.Set([]byte("del/"+strconv.Itoa(i)), []byte{byte(i)}), qt.IsNil)
	}
	qt.Assert(t, wTx.Set([]byte("keep"), []byte{1}), qt.IsNil)
	qt.Assert(t, wTx.Commit(), qt.IsNil)

	wTx = d.WriteTx()
	qt.Assert(t, db.DeletePrefix(wTx, []byte("del/")), qt.IsNil)
	qt.Assert(t, wTx.Commit(), qt.IsNil)

	count := 0
	qt.Assert(t, d.Iterate([]byte("del/"), func(_, _ []byte) bool {
		count++
		return true
	}), qt.IsNil)
	qt.Assert(t, count, qt.Equals, 0)

	v, err := d.Get([]byte("keep"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, v, qt.DeepEquals, []byte{1})
}
