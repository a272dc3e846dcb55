package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Vicen621-Facultad/votacion/apiclient"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/internal"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	keysPrint   = color.New(color.FgCyan, color.Bold)
	valuesPrint = color.New(color.FgMagenta)
	infoPrint   = color.New(color.FgGreen)
	errorPrint  = color.New(color.FgHiRed)
)

var (
	host     string
	key      string
	logLevel string

	cli *apiclient.HTTPclient
)

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.PersistentFlags().StringVarP(&host, "host", "u", "http://localhost:9090/",
		"API host endpoint to connect with")
	RootCmd.PersistentFlags().StringVarP(&key, "key", "k", os.Getenv("VOTACION_KEY"),
		"hex private key signing the requests (defaults to $VOTACION_KEY)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "error", "log level")

	RootCmd.AddCommand(infoCmd, keyCmd, interactiveCmd)
	RootCmd.AddCommand(userCommands()...)
	RootCmd.AddCommand(electionCommands()...)
	RootCmd.AddCommand(reportCmd, journalCmd)
}

// RootCmd is the votacion command line client.
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "command line client of the votacion voting service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Init(logLevel, "stderr")
		log.Infow("starting "+filepath.Base(os.Args[0]), "version", internal.Version)
		if cmd == keyCmd {
			return nil
		}
		u, err := url.Parse(host)
		if err != nil {
			return fmt.Errorf("invalid host %q: %w", host, err)
		}
		var account *ethereum.SignKeys
		if key != "" {
			account = ethereum.NewSignKeys()
			if err := account.AddHexKey(key); err != nil {
				return fmt.Errorf("invalid key: %w", err)
			}
		}
		cli, err = apiclient.NewHTTPclient(u, account)
		return err
	},
	SilenceUsage: true,
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Generate a new private key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k := ethereum.NewSignKeys()
		if err := k.Generate(); err != nil {
			return err
		}
		_, priv := k.HexString()
		printKV("address", k.Address().Hex())
		printKV("private key", priv)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the node information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := cli.Info()
		if err != nil {
			return err
		}
		printKV("version", info.Version)
		printKV("admin", info.Admin.Hex())
		printKV("reporter", info.Reporter.Hex())
		printKV("elections", info.Elections)
		printKV("health", info.Health)
		if a := cli.Account(); a != (common.Address{}) {
			printKV("account", a.Hex())
		}
		return nil
	},
}

func printKV(k string, v any) {
	fmt.Printf("%s %s\n", keysPrint.Sprintf("%s:", k), valuesPrint.Sprint(v))
}

// printJSON prints v indented, for the replies without a dedicated layout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(valuesPrint.Sprint(string(data)))
	return nil
}

func done(msg string, args ...any) {
	infoPrint.Printf(msg+"\n", args...)
}

func main() {
	// Report the version before the logger is set up, just in case something goes wrong.
	fmt.Fprintf(os.Stderr, "votacion cli version %q\n", internal.Version)
	if err := RootCmd.Execute(); err != nil {
		errorPrint.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
