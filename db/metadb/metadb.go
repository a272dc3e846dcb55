// Package metadb opens a db.Database by backend name.
package metadb

import (
	"fmt"
	"os"
	"testing"

	"github.com/Vicen621-Facultad/votacion/db"
	"github.com/Vicen621-Facultad/votacion/db/goleveldb"
	"github.com/Vicen621-Facultad/votacion/db/pebbledb"
)

// New opens the database of type typ stored in dir.
func New(typ, dir string) (db.Database, error) {
	opts := db.Options{Path: dir}
	switch typ {
	case db.TypePebble:
		return pebbledb.New(opts)
	case db.TypeLevelDB:
		return goleveldb.New(opts)
	default:
		return nil, fmt.Errorf("invalid dbType: %q. Available types: %q %q",
			typ, db.TypePebble, db.TypeLevelDB)
	}
}

// ForTest returns the backend used by tests, taken from VOTACION_DB_TYPE.
func ForTest() (typ string) {
	if typ = os.Getenv("VOTACION_DB_TYPE"); typ != "" {
		return typ
	}
	return db.TypePebble // default to Pebble, just like the node
}

// NewTest opens a database in a temporary directory that is closed when the
// test finishes.
func NewTest(tb testing.TB) db.Database {
	database, err := New(ForTest(), tb.TempDir())
	if err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() { database.Close() })
	return database
}
