package main

import (
	"fmt"
	"strconv"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func parseElectionID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid election id %q", s)
	}
	return uint32(id), nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// parseArgs parses the election id in args[0] and, if present, the address
// in args[1].
func parseArgs(args []string) (uint32, common.Address, error) {
	id, err := parseElectionID(args[0])
	if err != nil || len(args) < 2 {
		return id, common.Address{}, err
	}
	addr, err := parseAddress(args[1])
	return id, addr, err
}

var register api.RegisterRequest

func userCommands() []*cobra.Command {
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register the account as a user, pending approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := cli.Register(&register)
			if err != nil {
				return err
			}
			done("registered %s, waiting for approval", u.ID.Hex())
			return nil
		},
	}
	registerCmd.Flags().StringVar(&register.FirstName, "firstName", "", "first name")
	registerCmd.Flags().StringVar(&register.LastName, "lastName", "", "last name")
	registerCmd.Flags().StringVar(&register.PostalAddress, "postalAddress", "", "postal address")
	registerCmd.Flags().StringVar(&register.NationalID, "nationalId", "", "national identity document")
	registerCmd.Flags().Uint8Var(&register.Age, "age", 0, "age")

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List the accepted users (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := cli.Users()
			if err != nil {
				return err
			}
			return printJSON(users)
		},
	}
	usersCmd.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List the registrations waiting for approval (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := cli.PendingUsers()
			if err != nil {
				return err
			}
			return printJSON(users)
		},
	})

	userCmd := &cobra.Command{
		Use:   "user <address>",
		Short: "Show an accepted user (itself or admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			pending, _ := cmd.Flags().GetBool("pending")
			get := cli.User
			if pending {
				get = cli.PendingUser
			}
			u, err := get(who)
			if err != nil {
				return err
			}
			return printJSON(u)
		},
	}
	userCmd.Flags().Bool("pending", false, "look for a pending registration")

	approveCmd := &cobra.Command{
		Use:   "approve <address>",
		Short: "Accept a pending registration (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			if err := cli.ApproveUser(who); err != nil {
				return err
			}
			done("user %s approved", who.Hex())
			return nil
		},
	}

	setAdminCmd := &cobra.Command{
		Use:   "set-admin <address>",
		Short: "Hand the admin role over (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			if err := cli.SetAdmin(who); err != nil {
				return err
			}
			done("admin is now %s", who.Hex())
			return nil
		},
	}
	setReporterCmd := &cobra.Command{
		Use:   "set-reporter <address>",
		Short: "Change the reporter identity (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			if err := cli.SetReporter(who); err != nil {
				return err
			}
			done("reporter is now %s", who.Hex())
			return nil
		},
	}
	return []*cobra.Command{registerCmd, usersCmd, userCmd, approveCmd, setAdminCmd, setReporterCmd}
}

func electionCommands() []*cobra.Command {
	electionCmd := &cobra.Command{
		Use:   "election",
		Short: "Create, list and take part in elections",
	}
	createCmd := &cobra.Command{
		Use:   "create <start> [end]",
		Short: "Create an election (admin only)",
		Long: `Create an election running from start to end.
Dates use the DD/MM/YYYY or "DD/MM/YYYY HH:MM:SS" layouts. Without an end
the election closes at the end of the last of --days days.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			end := ""
			if len(args) > 1 {
				end = args[1]
			}
			days, _ := cmd.Flags().GetUint32("days")
			start, stop, err := electionWindow(args[0], end, days)
			if err != nil {
				return err
			}
			id, err := cli.CreateElection(start, stop)
			if err != nil {
				return err
			}
			done("election %d created, open until %s", id, stop)
			return nil
		},
	}
	createCmd.Flags().Uint32("days", 1, "length of the election when no end is given")

	electionCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every election",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listElections()
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show an election",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseElectionID(args[0])
				if err != nil {
					return err
				}
				e, err := cli.Election(id)
				if err != nil {
					return err
				}
				printElection(e)
				return nil
			},
		},
		createCmd,
		&cobra.Command{
			Use:   "nominate <id> candidate|voter",
			Short: "Nominate the account as a candidate or a voter",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseElectionID(args[0])
				if err != nil {
					return err
				}
				switch args[1] {
				case "candidate":
					err = cli.NominateCandidate(id)
				case "voter":
					err = cli.NominateVoter(id)
				default:
					return fmt.Errorf("unknown role %q", args[1])
				}
				if err != nil {
					return err
				}
				done("nominated as %s in election %d", args[1], id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "nominations <id>",
			Short: "List the pending nominations (admin only)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseElectionID(args[0])
				if err != nil {
					return err
				}
				n, err := cli.Nominations(id)
				if err != nil {
					return err
				}
				return printJSON(n)
			},
		},
		&cobra.Command{
			Use:   "approve <id> <address> candidate|voter",
			Short: "Accept a nomination (admin only)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, who, err := parseArgs(args)
				if err != nil {
					return err
				}
				switch args[2] {
				case "candidate":
					err = cli.ApproveCandidate(id, who)
				case "voter":
					err = cli.ApproveVoter(id, who)
				default:
					return fmt.Errorf("unknown role %q", args[2])
				}
				if err != nil {
					return err
				}
				done("%s accepted as %s in election %d", who.Hex(), args[2], id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status <id>",
			Short: "Tell whether an election started and ended (admin only)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseElectionID(args[0])
				if err != nil {
					return err
				}
				s, err := cli.ElectionStatus(id)
				if err != nil {
					return err
				}
				printKV("started", s.Started)
				printKV("ended", s.Ended)
				return nil
			},
		},
		&cobra.Command{
			Use:   "voted <id> <address>",
			Short: "Tell whether a voter voted (admin only)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, who, err := parseArgs(args)
				if err != nil {
					return err
				}
				voted, err := cli.HasVoted(id, who)
				if err != nil {
					return err
				}
				printKV("voted", voted)
				return nil
			},
		},
		&cobra.Command{
			Use:   "votes <id> <candidate>",
			Short: "Show the votes of a candidate of a closed election (admin only)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, who, err := parseArgs(args)
				if err != nil {
					return err
				}
				votes, err := cli.VotesForCandidate(id, who)
				if err != nil {
					return err
				}
				printKV("votes", votes)
				return nil
			},
		},
	)

	voteCmd := &cobra.Command{
		Use:   "vote <id> <candidate>",
		Short: "Vote for a candidate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, candidate, err := parseArgs(args)
			if err != nil {
				return err
			}
			if err := cli.Vote(id, candidate); err != nil {
				return err
			}
			done("vote cast in election %d", id)
			return nil
		},
	}
	return []*cobra.Command{electionCmd, voteCmd}
}

func listElections() error {
	list, err := cli.Elections()
	if err != nil {
		return err
	}
	for i := range list {
		printElection(&list[i])
	}
	return nil
}

func printElection(e *api.Election) {
	printKV("election", e.ElectionID)
	printKV("  start", e.Start)
	printKV("  end", e.End)
	printKV("  status", e.Status)
	printKV("  candidates", len(e.Candidates))
	printKV("  voters", e.VoterCount)
	printKV("  votes", e.VoteCount)
}

var reportCmd = &cobra.Command{
	Use:   "report <id> voters|participation|results",
	Short: "Request a report of a closed election (reporter only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseElectionID(args[0])
		if err != nil {
			return err
		}
		switch args[1] {
		case "voters":
			users, err := cli.RegisteredVoters(id)
			if err != nil {
				return err
			}
			return printJSON(users)
		case "participation":
			p, err := cli.Participation(id)
			if err != nil {
				return err
			}
			printKV("voters", p.Voters)
			printKV("votes", p.Votes)
			printKV("participation", fmt.Sprintf("%d%%", p.Percent))
			return nil
		case "results":
			tally, err := cli.Results(id)
			if err != nil {
				return err
			}
			for _, t := range tally {
				printKV(t.Candidate.Hex(), t.Votes)
			}
			return nil
		}
		return fmt.Errorf("unknown report %q", args[1])
	},
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List the activity journal (admin only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetUint64("from")
		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := cli.Journal(from, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			printKV(strconv.FormatUint(e.Seq, 10), fmt.Sprintf("%s actor=%s subject=%s election=%d time=%s",
				e.Kind, e.Actor.Hex(), e.Subject.Hex(), e.Election, date.FromTimestamp(e.Time)))
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().Uint64("from", 1, "first sequence number")
	journalCmd.Flags().Int("limit", 0, "maximum number of entries (server maximum if 0)")
}
