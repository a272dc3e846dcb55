package journal

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/models"
	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/proto"
)

func encodeEntry(e Entry) ([]byte, error) {
	return proto.Marshal(&models.JournalEntry{
		Seq:      e.Seq,
		Kind:     string(e.Kind),
		Actor:    e.Actor.Bytes(),
		Subject:  e.Subject.Bytes(),
		Election: e.Election,
		Time:     e.Time,
	})
}

func decodeEntry(b []byte) (Entry, error) {
	pe := &models.JournalEntry{}
	if err := proto.Unmarshal(b, pe); err != nil {
		return Entry{}, fmt.Errorf("cannot decode journal entry: %w", err)
	}
	return Entry{
		Seq:      pe.Seq,
		Kind:     Kind(pe.Kind),
		Actor:    common.BytesToAddress(pe.Actor),
		Subject:  common.BytesToAddress(pe.Subject),
		Election: pe.Election,
		Time:     pe.Time,
	}, nil
}
