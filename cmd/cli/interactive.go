package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	ui "github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the client as an interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return interactive()
	},
}

type menuItem struct {
	label string
	run   func() error
}

func interactive() error {
	items := color.New(color.FgHiYellow, color.Bold)
	menu := []menuItem{
		{"Node info", func() error { return infoCmd.RunE(infoCmd, nil) }},
		{"Register", interactiveRegister},
		{"List elections", listElections},
		{"Create an election", interactiveCreateElection},
		{"Nominate myself", interactiveNominate},
		{"Approve a nomination", interactiveApprove},
		{"Vote", interactiveVote},
		{"Results", func() error { return interactiveReport("results") }},
		{"Participation", func() error { return interactiveReport("participation") }},
		{"Change account", interactiveAccount},
		{"Quit", nil},
	}
	labels := make([]string, len(menu))
	for i, m := range menu {
		labels[i] = items.Sprint(m.label)
	}
	for {
		account := "no account"
		if a := cli.Account(); a != (common.Address{}) {
			account = a.Hex()
		}
		prompt := ui.Select{
			Label:    color.New(color.FgHiBlue).Sprint(account),
			HideHelp: true,
			Size:     len(menu),
			Items:    labels,
		}
		option, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if menu[option].run == nil {
			return nil
		}
		if err := menu[option].run(); err != nil {
			errorPrint.Println(err)
		}
	}
}

func ask(label string, validate ui.ValidateFunc) (string, error) {
	p := ui.Prompt{Label: label, Validate: validate}
	return p.Run()
}

func validateElectionID(s string) error {
	_, err := parseElectionID(s)
	return err
}

func validateDate(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return errors.New("use DD/MM/YYYY [HH:MM:SS]")
	}
	if !d.IsValid() {
		return errors.New("invalid date")
	}
	return nil
}

func askElectionID() (uint32, error) {
	s, err := ask("Election id", validateElectionID)
	if err != nil {
		return 0, err
	}
	return parseElectionID(s)
}

func askRole() (string, error) {
	p := ui.Select{Label: "Role", Items: []string{"candidate", "voter"}}
	_, role, err := p.Run()
	return role, err
}

func interactiveRegister() error {
	req := api.RegisterRequest{}
	var err error
	if req.FirstName, err = ask("First name", nil); err != nil {
		return err
	}
	if req.LastName, err = ask("Last name", nil); err != nil {
		return err
	}
	if req.PostalAddress, err = ask("Postal address", nil); err != nil {
		return err
	}
	if req.NationalID, err = ask("National ID", nil); err != nil {
		return err
	}
	age, err := ask("Age", func(s string) error {
		_, err := strconv.ParseUint(s, 10, 8)
		return err
	})
	if err != nil {
		return err
	}
	n, _ := strconv.ParseUint(age, 10, 8)
	req.Age = uint8(n)
	u, err := cli.Register(&req)
	if err != nil {
		return err
	}
	done("registered %s, waiting for approval", u.ID.Hex())
	return nil
}

func interactiveCreateElection() error {
	s, err := ask("Start", validateDate)
	if err != nil {
		return err
	}
	e, err := ask("End (empty for a one day election)", func(e string) error {
		if e == "" {
			return nil
		}
		if err := validateDate(e); err != nil {
			return err
		}
		_, _, err := electionWindow(s, e, 1)
		return err
	})
	if err != nil {
		return err
	}
	start, end, err := electionWindow(s, e, 1)
	if err != nil {
		return err
	}
	id, err := cli.CreateElection(start, end)
	if err != nil {
		return err
	}
	done("election %d created, open until %s", id, end)
	return nil
}

func interactiveNominate() error {
	id, err := askElectionID()
	if err != nil {
		return err
	}
	role, err := askRole()
	if err != nil {
		return err
	}
	if role == "candidate" {
		err = cli.NominateCandidate(id)
	} else {
		err = cli.NominateVoter(id)
	}
	if err != nil {
		return err
	}
	done("nominated as %s in election %d", role, id)
	return nil
}

func interactiveApprove() error {
	id, err := askElectionID()
	if err != nil {
		return err
	}
	n, err := cli.Nominations(id)
	if err != nil {
		return err
	}
	var labels []string
	var who []common.Address
	var roles []string
	for _, c := range n.Candidates {
		labels = append(labels, "candidate "+c.Hex())
		who = append(who, c)
		roles = append(roles, "candidate")
	}
	for _, v := range n.Voters {
		labels = append(labels, "voter "+v.Hex())
		who = append(who, v)
		roles = append(roles, "voter")
	}
	if len(labels) == 0 {
		done("no pending nominations")
		return nil
	}
	p := ui.Select{Label: "Nomination", Items: labels}
	i, _, err := p.Run()
	if err != nil {
		return err
	}
	if roles[i] == "candidate" {
		err = cli.ApproveCandidate(id, who[i])
	} else {
		err = cli.ApproveVoter(id, who[i])
	}
	if err != nil {
		return err
	}
	done("%s accepted as %s", who[i].Hex(), roles[i])
	return nil
}

func interactiveVote() error {
	id, err := askElectionID()
	if err != nil {
		return err
	}
	e, err := cli.Election(id)
	if err != nil {
		return err
	}
	if len(e.Candidates) == 0 {
		done("election %d has no candidates", id)
		return nil
	}
	labels := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		labels[i] = c.Hex()
	}
	p := ui.Select{Label: "Candidate", Items: labels}
	i, _, err := p.Run()
	if err != nil {
		return err
	}
	if err := cli.Vote(id, e.Candidates[i]); err != nil {
		return err
	}
	done("vote cast in election %d", id)
	return nil
}

func interactiveReport(report string) error {
	id, err := ask("Election id", validateElectionID)
	if err != nil {
		return err
	}
	return reportCmd.RunE(reportCmd, []string{id, report})
}

func interactiveAccount() error {
	k, err := ask("Hex private key", func(s string) error {
		if !util.IsHexEncodedStringWithLength(s, 32) {
			return errors.New("expected 32 hex encoded bytes")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := cli.SetAccount(k); err != nil {
		return err
	}
	done("using account %s", cli.Account().Hex())
	return nil
}
