//nolint:lll
package api

import (
	"errors"
	"fmt"

	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/Vicen621-Facultad/votacion/voting"
)

// APIerror satisfies the error interface.
// Error() returns a human-readable description of the error.
//
// Error codes in the 4000-4999 range are the user's fault,
// and error codes 5000-5999 are the server's fault, mimicking HTTP.
var (
	ErrAddressMalformed      = apirest.APIerror{Code: 4000, HTTPstatus: apirest.HTTPstatusBadRequest, Err: fmt.Errorf("address malformed")}
	ErrCantParseElectionID   = apirest.APIerror{Code: 4001, HTTPstatus: apirest.HTTPstatusBadRequest, Err: fmt.Errorf("cannot parse electionID")}
	ErrCantParseDataAsJSON   = apirest.APIerror{Code: 4002, HTTPstatus: apirest.HTTPstatusBadRequest, Err: fmt.Errorf("cannot parse data as JSON")}
	ErrCantParseDate         = apirest.APIerror{Code: 4003, HTTPstatus: apirest.HTTPstatusBadRequest, Err: fmt.Errorf("cannot parse date")}
	ErrCantParseJournalRange = apirest.APIerror{Code: 4004, HTTPstatus: apirest.HTTPstatusBadRequest, Err: fmt.Errorf("cannot parse journal range")}

	ErrNotAdmin      = apirest.APIerror{Code: 4010, HTTPstatus: apirest.HTTPstatusForbidden, Err: voting.ErrNotAdmin}
	ErrReportersOnly = apirest.APIerror{Code: 4011, HTTPstatus: apirest.HTTPstatusForbidden, Err: voting.ErrReportersOnly}

	ErrUserNotFound        = apirest.APIerror{Code: 4020, HTTPstatus: apirest.HTTPstatusNotFound, Err: directory.ErrUserNotFound}
	ErrPendingUserNotFound = apirest.APIerror{Code: 4021, HTTPstatus: apirest.HTTPstatusNotFound, Err: directory.ErrPendingUserNotFound}
	ErrAlreadyRegistered   = apirest.APIerror{Code: 4022, HTTPstatus: apirest.HTTPstatusConflict, Err: directory.ErrAlreadyRegistered}
	ErrUserNotAccepted     = apirest.APIerror{Code: 4023, HTTPstatus: apirest.HTTPstatusConflict, Err: directory.ErrUserNotAccepted}

	ErrElectionNotFound = apirest.APIerror{Code: 4030, HTTPstatus: apirest.HTTPstatusNotFound, Err: voting.ErrElectionNotFound}
	ErrInvalidDate      = apirest.APIerror{Code: 4031, HTTPstatus: apirest.HTTPstatusBadRequest, Err: voting.ErrInvalidDate}
	ErrStartAfterEnd    = apirest.APIerror{Code: 4032, HTTPstatus: apirest.HTTPstatusBadRequest, Err: voting.ErrStartAfterEnd}

	ErrAlreadyNominatedAsCandidate = apirest.APIerror{Code: 4040, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrAlreadyNominatedAsCandidate}
	ErrAlreadyNominatedAsVoter     = apirest.APIerror{Code: 4041, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrAlreadyNominatedAsVoter}
	ErrNotNominatedAsCandidate     = apirest.APIerror{Code: 4042, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrNotNominatedAsCandidate}
	ErrNotNominatedAsVoter         = apirest.APIerror{Code: 4043, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrNotNominatedAsVoter}
	ErrAlreadyCandidate            = apirest.APIerror{Code: 4044, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrAlreadyCandidate}
	ErrAlreadyVoter                = apirest.APIerror{Code: 4045, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrAlreadyVoter}

	ErrElectionStarted     = apirest.APIerror{Code: 4050, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrElectionStarted}
	ErrElectionEnded       = apirest.APIerror{Code: 4051, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrElectionEnded}
	ErrElectionNotStarted  = apirest.APIerror{Code: 4052, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrElectionNotStarted}
	ErrElectionNotFinished = apirest.APIerror{Code: 4053, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrElectionNotFinished}

	ErrNotAVoter     = apirest.APIerror{Code: 4060, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrNotAVoter}
	ErrNotACandidate = apirest.APIerror{Code: 4061, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrNotACandidate}
	ErrAlreadyVoted  = apirest.APIerror{Code: 4062, HTTPstatus: apirest.HTTPstatusConflict, Err: election.ErrAlreadyVoted}

	ErrInternal         = apirest.APIerror{Code: 5000, HTTPstatus: apirest.HTTPstatusInternalErr, Err: fmt.Errorf("internal error")}
	ErrCantFetchJournal = apirest.APIerror{Code: 5001, HTTPstatus: apirest.HTTPstatusInternalErr, Err: fmt.Errorf("cannot fetch journal entries")}
)

// domainErrors are the errors returned by the voting service, in the order
// they are matched.
var domainErrors = []apirest.APIerror{
	ErrNotAdmin,
	ErrReportersOnly,
	ErrUserNotFound,
	ErrPendingUserNotFound,
	ErrAlreadyRegistered,
	ErrUserNotAccepted,
	ErrElectionNotFound,
	ErrInvalidDate,
	ErrStartAfterEnd,
	ErrAlreadyNominatedAsCandidate,
	ErrAlreadyNominatedAsVoter,
	ErrNotNominatedAsCandidate,
	ErrNotNominatedAsVoter,
	ErrAlreadyCandidate,
	ErrAlreadyVoter,
	ErrElectionStarted,
	ErrElectionEnded,
	ErrElectionNotStarted,
	ErrElectionNotFinished,
	ErrNotAVoter,
	ErrNotACandidate,
	ErrAlreadyVoted,
}

// ErrorByCode returns the domain APIerror with the given code.
func ErrorByCode(code int) (apirest.APIerror, bool) {
	for _, e := range domainErrors {
		if e.Code == code {
			return e, true
		}
	}
	return apirest.APIerror{}, false
}

// toAPIerror converts an error of the voting service into an APIerror.
// Unknown errors are internal errors.
func toAPIerror(err error) apirest.APIerror {
	for _, e := range domainErrors {
		if errors.Is(err, e.Err) {
			return apirest.APIerror{Err: err, Code: e.Code, HTTPstatus: e.HTTPstatus}
		}
	}
	log.Warnw("internal api error", "err", err)
	return ErrInternal.WithErr(err)
}
