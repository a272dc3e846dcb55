package voting

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/models"
	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/proto"
)

type meta struct {
	admin     common.Address
	reporter  common.Address
	elections uint32
}

func toAddress(b []byte) (common.Address, error) {
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("invalid address length %d", len(b))
	}
	return common.BytesToAddress(b), nil
}

func toAddresses(list [][]byte) ([]common.Address, error) {
	if len(list) == 0 {
		return nil, nil
	}
	addrs := make([]common.Address, len(list))
	for i, b := range list {
		a, err := toAddress(b)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	return addrs, nil
}

func fromAddresses(addrs []common.Address) [][]byte {
	list := make([][]byte, len(addrs))
	for i, a := range addrs {
		list[i] = a.Bytes()
	}
	return list
}

func encodeMeta(m meta) ([]byte, error) {
	return proto.Marshal(&models.Meta{
		Admin:     m.admin.Bytes(),
		Reporter:  m.reporter.Bytes(),
		Elections: m.elections,
	})
}

func decodeMeta(b []byte) (meta, error) {
	pm := &models.Meta{}
	if err := proto.Unmarshal(b, pm); err != nil {
		return meta{}, fmt.Errorf("cannot decode meta: %w", err)
	}
	admin, err := toAddress(pm.Admin)
	if err != nil {
		return meta{}, fmt.Errorf("cannot decode meta admin: %w", err)
	}
	reporter, err := toAddress(pm.Reporter)
	if err != nil {
		return meta{}, fmt.Errorf("cannot decode meta reporter: %w", err)
	}
	return meta{admin: admin, reporter: reporter, elections: pm.Elections}, nil
}

func encodeUser(u directory.User) ([]byte, error) {
	return proto.Marshal(&models.User{
		Id:            u.ID.Bytes(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		PostalAddress: u.PostalAddress,
		NationalId:    u.NationalID,
		Age:           uint32(u.Age),
	})
}

func decodeUser(b []byte) (directory.User, error) {
	pu := &models.User{}
	if err := proto.Unmarshal(b, pu); err != nil {
		return directory.User{}, fmt.Errorf("cannot decode user: %w", err)
	}
	id, err := toAddress(pu.Id)
	if err != nil {
		return directory.User{}, fmt.Errorf("cannot decode user: %w", err)
	}
	return directory.User{
		ID:            id,
		FirstName:     pu.FirstName,
		LastName:      pu.LastName,
		PostalAddress: pu.PostalAddress,
		NationalID:    pu.NationalId,
		Age:           uint8(pu.Age),
	}, nil
}

func dateModel(d date.Date) *models.Date {
	return &models.Date{
		Day:    d.Day,
		Month:  d.Month,
		Year:   d.Year,
		Hour:   d.Hour,
		Minute: d.Minute,
		Second: d.Second,
	}
}

func fromDateModel(d *models.Date) date.Date {
	return date.Date{
		Day:    d.GetDay(),
		Month:  d.GetMonth(),
		Year:   d.GetYear(),
		Hour:   d.GetHour(),
		Minute: d.GetMinute(),
		Second: d.GetSecond(),
	}
}

func encodeElection(r election.Record) ([]byte, error) {
	pe := &models.Election{
		Id:                r.ID,
		Start:             dateModel(r.Start),
		End:               dateModel(r.End),
		PendingVoters:     fromAddresses(r.PendingVoters),
		PendingCandidates: fromAddresses(r.PendingCandidates),
		Voters:            fromAddresses(r.Voters),
		Candidates:        fromAddresses(r.Candidates),
		Voted:             fromAddresses(r.Voted),
	}
	for _, t := range r.Tally {
		pe.Tally = append(pe.Tally, &models.Tally{
			Candidate: t.Candidate.Bytes(),
			Votes:     t.Votes,
		})
	}
	return proto.Marshal(pe)
}

func decodeElection(b []byte) (*election.Election, error) {
	pe := &models.Election{}
	if err := proto.Unmarshal(b, pe); err != nil {
		return nil, fmt.Errorf("cannot decode election: %w", err)
	}
	r := election.Record{
		ID:    pe.Id,
		Start: fromDateModel(pe.Start),
		End:   fromDateModel(pe.End),
	}
	var err error
	for _, group := range []struct {
		dst *[]common.Address
		src [][]byte
	}{
		{&r.PendingVoters, pe.PendingVoters},
		{&r.PendingCandidates, pe.PendingCandidates},
		{&r.Voters, pe.Voters},
		{&r.Candidates, pe.Candidates},
		{&r.Voted, pe.Voted},
	} {
		if *group.dst, err = toAddresses(group.src); err != nil {
			return nil, fmt.Errorf("cannot decode election %d: %w", pe.Id, err)
		}
	}
	for _, t := range pe.Tally {
		candidate, err := toAddress(t.Candidate)
		if err != nil {
			return nil, fmt.Errorf("cannot decode election %d tally: %w", pe.Id, err)
		}
		r.Tally = append(r.Tally, election.Tally{Candidate: candidate, Votes: t.Votes})
	}
	return election.FromRecord(r)
}
