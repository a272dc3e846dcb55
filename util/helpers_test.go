package util

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTrimHex(t *testing.T) {
	qt.Assert(t, TrimHex("0xabcd"), qt.Equals, "abcd")
	qt.Assert(t, TrimHex("0Xabcd"), qt.Equals, "abcd")
	qt.Assert(t, TrimHex("abcd"), qt.Equals, "abcd")
	qt.Assert(t, TrimHex("0"), qt.Equals, "0")
}

func TestIsHexEncodedStringWithLength(t *testing.T) {
	qt.Assert(t, IsHexEncodedStringWithLength("0xa1b2c3", 3), qt.IsTrue)
	qt.Assert(t, IsHexEncodedStringWithLength("a1b2c3", 3), qt.IsTrue)
	qt.Assert(t, IsHexEncodedStringWithLength("a1b2", 3), qt.IsFalse)
	qt.Assert(t, IsHexEncodedStringWithLength("zzb2c3", 3), qt.IsFalse)
	qt.Assert(t, IsHexEncodedStringWithLength("", 0), qt.IsFalse)
}
