package election

import "fmt"

var (
	// phase
	ErrElectionStarted     = fmt.Errorf("election already started")
	ErrElectionEnded       = fmt.Errorf("election already ended")
	ErrElectionNotStarted  = fmt.Errorf("election not started yet")
	ErrElectionNotFinished = fmt.Errorf("election not finished yet")

	// nomination and roles
	ErrAlreadyNominatedAsCandidate = fmt.Errorf("already nominated as candidate")
	ErrAlreadyNominatedAsVoter     = fmt.Errorf("already nominated as voter")
	ErrNotNominatedAsCandidate     = fmt.Errorf("not nominated as candidate")
	ErrNotNominatedAsVoter         = fmt.Errorf("not nominated as voter")
	ErrAlreadyCandidate            = fmt.Errorf("already a candidate")
	ErrAlreadyVoter                = fmt.Errorf("already a voter")

	// voting
	ErrNotAVoter     = fmt.Errorf("not a voter")
	ErrNotACandidate = fmt.Errorf("not a candidate")
	ErrAlreadyVoted  = fmt.Errorf("already voted")
)
