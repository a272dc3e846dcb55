package election

import "github.com/ethereum/go-ethereum/common"

// addrSet is a set of addresses that remembers insertion order.
type addrSet struct {
	list []common.Address
	pos  map[common.Address]int
}

func newAddrSet(addrs ...common.Address) *addrSet {
	s := &addrSet{pos: make(map[common.Address]int, len(addrs))}
	for _, a := range addrs {
		s.add(a)
	}
	return s
}

func (s *addrSet) has(a common.Address) bool {
	_, ok := s.pos[a]
	return ok
}

// add appends a, reporting false if it was already present.
func (s *addrSet) add(a common.Address) bool {
	if s.has(a) {
		return false
	}
	s.pos[a] = len(s.list)
	s.list = append(s.list, a)
	return true
}

func (s *addrSet) remove(a common.Address) bool {
	i, ok := s.pos[a]
	if !ok {
		return false
	}
	delete(s.pos, a)
	s.list = append(s.list[:i], s.list[i+1:]...)
	for j := i; j < len(s.list); j++ {
		s.pos[s.list[j]] = j
	}
	return true
}

func (s *addrSet) len() int {
	return len(s.list)
}

func (s *addrSet) slice() []common.Address {
	return append([]common.Address{}, s.list...)
}

func (s *addrSet) clone() *addrSet {
	return newAddrSet(s.list...)
}
