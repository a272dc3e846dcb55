package config

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()
	qt.Assert(t, c.ValidDBType(), qt.IsTrue)
	qt.Assert(t, c.API.ListenPort, qt.Equals, DefaultListenPort)
	qt.Assert(t, c.TimeOffsetHours, qt.Equals, 3)

	c.DBType = "leveldb"
	qt.Assert(t, c.ValidDBType(), qt.IsTrue)
	c.DBType = "badger"
	qt.Assert(t, c.ValidDBType(), qt.IsFalse)
}
