package testutil

import (
	"math/rand"
	"testing"

	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// Random is a deterministic source of test data.
type Random struct {
	rand *rand.Rand
}

func NewRandom(seed int64) Random {
	return Random{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, err := r.rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func (r *Random) RandomInRange(min, max int) int {
	return r.rand.Intn(max-min) + min
}

// RandomAddress returns an address that is not tied to any key.
func (r *Random) RandomAddress() common.Address {
	return common.BytesToAddress(r.RandomBytes(common.AddressLength))
}

// RandomSigners generates n fresh key pairs.
func RandomSigners(tb testing.TB, n int) []*ethereum.SignKeys {
	signers := make([]*ethereum.SignKeys, n)
	for i := range signers {
		signers[i] = ethereum.NewSignKeys()
		if err := signers[i].Generate(); err != nil {
			tb.Fatal(err)
		}
	}
	return signers
}

// Address returns a readable fixed address, every byte set to b.
func Address(b byte) common.Address {
	var addr common.Address
	for i := range addr {
		addr[i] = b
	}
	return addr
}
