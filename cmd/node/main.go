package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/config"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/db"
	"github.com/Vicen621-Facultad/votacion/db/metadb"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/internal"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/Vicen621-Facultad/votacion/metrics"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/Vicen621-Facultad/votacion/voting"
	ethcommon "github.com/ethereum/go-ethereum/common"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newConfig() (*config.Config, config.Error) {
	var err error
	var cfgError config.Error
	// create base config
	globalCfg := config.NewConfig()
	// get current user home dir
	home, err := os.UserHomeDir()
	if err != nil {
		cfgError = config.Error{
			Critical: true,
			Message:  fmt.Sprintf("cannot get user home directory with error: %s", err),
		}
		return nil, cfgError
	}

	// CLI flags will be used if something fails from this point
	// CLI flags have preference over the config file
	// Booleans should be passed to the CLI as: var=True/false

	// global
	flag.StringVarP(&globalCfg.DataDir, "dataDir", "d", home+"/.votacion",
		"directory where data is stored")
	flag.StringVarP(&globalCfg.DBType, "dbType", "t", db.TypePebble,
		fmt.Sprintf("key-value db type (%s, %s)", db.TypePebble, db.TypeLevelDB))
	flag.StringP("logLevel", "l", globalCfg.LogLevel,
		"log level (debug, info, warn, error, fatal)")
	flag.String("logOutput", globalCfg.LogOutput,
		"log output (stdout, stderr or filepath)")
	flag.String("logErrorFile", "",
		"log errors and warnings to a file")
	flag.Bool("saveConfig", false,
		"overwrite an existing config file with the provided CLI flags")
	flag.StringP("signingKey", "k", "",
		"signing private key, its address is the admin of a new voting state")
	flag.String("admin", "",
		"admin address of a new voting state (defaults to the signing key address)")
	flag.String("reporter", "",
		"reporter address of a new voting state (defaults to 0x...10)")
	flag.Int("timeOffset", config.DefaultTimeOffsetHours,
		"hours added to the election dates to get UTC")
	flag.Int("journalQueueSize", config.DefaultJournalQueueSize,
		"journal entries that can wait to be stored")
	flag.Int("journalFlushPeriod", config.DefaultJournalFlushSeconds,
		"journal flush period in seconds")
	flag.Int("reportCacheSize", config.DefaultReportCacheSize,
		"number of elections whose reports are cached")
	// api
	flag.String("apiRoute", config.DefaultAPIRoute, "HTTP API base route")
	flag.String("listenHost", "0.0.0.0", "API endpoint listen address")
	flag.IntP("listenPort", "p", config.DefaultListenPort, "API endpoint http port")
	// ssl
	flag.String("sslDomain", "",
		"enable TLS-secure domain with LetsEncrypt (listenPort=443 is required)")
	// metrics
	flag.Bool("metricsEnabled", false, "enable prometheus metrics")
	flag.Int("metricsRefreshInterval", 5, "metrics refresh interval in seconds")

	flag.CommandLine.SortFlags = false
	// parse flags
	flag.Parse()

	// setting up viper
	viper := viper.New()
	viper.SetConfigName(config.ConfigFileName)
	viper.SetConfigType("yml")
	viper.SetEnvPrefix("VOTACION")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set FlagVars first
	viper.BindPFlag("dataDir", flag.Lookup("dataDir"))
	globalCfg.DataDir = viper.GetString("dataDir")

	// Add viper config path (now we know it)
	viper.AddConfigPath(globalCfg.DataDir)

	// binding flags to viper
	// global
	viper.BindPFlag("dbType", flag.Lookup("dbType"))
	viper.BindPFlag("logLevel", flag.Lookup("logLevel"))
	viper.BindPFlag("logErrorFile", flag.Lookup("logErrorFile"))
	viper.BindPFlag("logOutput", flag.Lookup("logOutput"))
	viper.BindPFlag("saveConfig", flag.Lookup("saveConfig"))
	viper.BindPFlag("signingKey", flag.Lookup("signingKey"))
	viper.BindPFlag("admin", flag.Lookup("admin"))
	viper.BindPFlag("reporter", flag.Lookup("reporter"))
	viper.BindPFlag("timeOffsetHours", flag.Lookup("timeOffset"))
	viper.BindPFlag("journalQueueSize", flag.Lookup("journalQueueSize"))
	viper.BindPFlag("journalFlushSeconds", flag.Lookup("journalFlushPeriod"))
	viper.BindPFlag("reportCacheSize", flag.Lookup("reportCacheSize"))

	// api
	viper.BindPFlag("api.Route", flag.Lookup("apiRoute"))
	viper.BindPFlag("api.ListenHost", flag.Lookup("listenHost"))
	viper.BindPFlag("api.ListenPort", flag.Lookup("listenPort"))
	viper.Set("api.Ssl.DirCert", globalCfg.DataDir+"/tls")
	viper.BindPFlag("api.Ssl.Domain", flag.Lookup("sslDomain"))

	// metrics
	viper.Set("metrics.Path", globalCfg.Metrics.Path)
	viper.BindPFlag("metrics.Enabled", flag.Lookup("metricsEnabled"))
	viper.BindPFlag("metrics.RefreshInterval", flag.Lookup("metricsRefreshInterval"))

	// check if config file exists
	_, err = os.Stat(filepath.Join(globalCfg.DataDir, config.ConfigFileName+".yml"))
	if os.IsNotExist(err) {
		cfgError = config.Error{
			Message: fmt.Sprintf("creating new config file in %s", globalCfg.DataDir),
		}
		// creating config folder if not exists
		err = os.MkdirAll(globalCfg.DataDir, os.ModePerm)
		if err != nil {
			cfgError = config.Error{
				Message: fmt.Sprintf("cannot create data directory: %s", err),
			}
		}
		// create config file if not exists
		if err := viper.SafeWriteConfig(); err != nil {
			cfgError = config.Error{
				Message: fmt.Sprintf("cannot write config file into config dir: %s", err),
			}
		}
	} else {
		// read config file
		err = viper.ReadInConfig()
		if err != nil {
			cfgError = config.Error{
				Message: fmt.Sprintf("cannot read loaded config file in %s: %s", globalCfg.DataDir, err),
			}
		}
	}
	err = viper.Unmarshal(&globalCfg)
	if err != nil {
		cfgError = config.Error{
			Message: fmt.Sprintf("cannot unmarshal loaded config file: %s", err),
		}
	}

	if len(globalCfg.SigningKey) < 32 {
		fmt.Println("no signing key, generating one...")
		signer := ethereum.NewSignKeys()
		err = signer.Generate()
		if err != nil {
			cfgError = config.Error{
				Message: fmt.Sprintf("cannot generate signing key: %s", err),
			}
			return globalCfg, cfgError
		}
		_, priv := signer.HexString()
		viper.Set("signingKey", priv)
		globalCfg.SigningKey = priv
		globalCfg.SaveConfig = true
	}

	if globalCfg.SaveConfig {
		viper.Set("saveConfig", false)
		if err := viper.WriteConfig(); err != nil {
			cfgError = config.Error{
				Message: fmt.Sprintf("cannot overwrite config file into config dir: %s", err),
			}
		}
	}

	return globalCfg, cfgError
}

// addressFromConfig parses an optional address setting.
func addressFromConfig(name, s string) ethcommon.Address {
	if s == "" {
		return ethcommon.Address{}
	}
	if !ethcommon.IsHexAddress(s) {
		log.Fatalf("%s %q is not a valid address", name, s)
	}
	return ethcommon.HexToAddress(s)
}

func main() {
	// Don't use the log package here, because we want to report the version
	// before loading the config and setting up the logger.
	fmt.Fprintf(os.Stderr, "votacion node version %q\n", internal.Version)

	// setup config
	// creating config and init logger
	globalCfg, cfgErr := newConfig()
	if globalCfg == nil {
		log.Fatal("cannot read configuration")
	}
	log.Init(globalCfg.LogLevel, globalCfg.LogOutput)
	if path := globalCfg.LogErrorFile; path != "" {
		if err := log.SetFileErrorLog(path); err != nil {
			log.Fatal(err)
		}
	}
	log.Debugf("initializing config %+v", *globalCfg)

	// check if errors during config creation and determine if Critical
	if cfgErr.Critical && cfgErr.Message != "" {
		log.Fatalf("critical error loading config: %s", cfgErr.Message)
	} else if !cfgErr.Critical && cfgErr.Message != "" {
		log.Warnf("non-critical error loading config: %s", cfgErr.Message)
	} else if !cfgErr.Critical && cfgErr.Message == "" {
		log.Infof("config file loaded successfully. Reminder: CLI flags have preference")
	}

	// Check the dbType is valid
	if !globalCfg.ValidDBType() {
		log.Fatalf("dbType %s is invalid. Valid ones: %s, %s", globalCfg.DBType, db.TypePebble, db.TypeLevelDB)
	}
	date.OffsetMillis = int64(globalCfg.TimeOffsetHours) * 60 * 60 * 1000

	log.Infof("starting votacion node version %q", internal.Version)

	signer := ethereum.NewSignKeys()
	if err := signer.AddHexKey(globalCfg.SigningKey); err != nil {
		log.Fatalf("error adding hex key: (%s)", err)
	}
	admin := addressFromConfig("admin", globalCfg.Admin)
	if admin == (ethcommon.Address{}) {
		admin = signer.Address()
	}
	reporter := addressFromConfig("reporter", globalCfg.Reporter)

	database, err := metadb.New(globalCfg.DBType, filepath.Join(globalCfg.DataDir, "db"))
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the HTTP router
	var httpRouter httprouter.HTTProuter
	httpRouter.TLSdomain = globalCfg.API.Ssl.Domain
	httpRouter.TLSdirCert = globalCfg.API.Ssl.DirCert
	if err = httpRouter.Init(globalCfg.API.ListenHost, globalCfg.API.ListenPort); err != nil {
		log.Fatal(err)
	}
	defer httpRouter.Close()

	// Enable metrics via proxy, before any route is added
	var metricsAgent *metrics.Agent
	if globalCfg.Metrics.Enabled {
		metricsAgent = metrics.NewAgent(globalCfg.Metrics.Path,
			time.Duration(globalCfg.Metrics.RefreshInterval)*time.Second, &httpRouter)
	}

	votingSrv, err := voting.New(voting.NewDBStore(database), voting.SystemClock{}, admin, reporter)
	if err != nil {
		log.Fatal(err)
	}
	log.Infow("voting service ready", "admin", votingSrv.Admin().Hex(),
		"reporter", votingSrv.Reporter().Hex(), "elections", votingSrv.ElectionCount())

	jrnl, err := journal.New(database, globalCfg.JournalQueueSize)
	if err != nil {
		log.Fatal(err)
	}
	votingSrv.SetJournal(jrnl)
	journalDone := make(chan struct{})
	go func() {
		jrnl.Run(ctx, time.Duration(globalCfg.JournalFlushSeconds)*time.Second)
		close(journalDone)
	}()

	reports := reporting.New(votingSrv, globalCfg.ReportCacheSize)

	if metricsAgent != nil {
		go votingSrv.CollectMetrics(ctx, metricsAgent)
		journal.RegisterMetrics(metricsAgent)
		reporting.RegisterMetrics(metricsAgent)
	}

	// HTTP API REST service
	log.Info("enabling API")
	uAPI, err := api.NewAPI(&httpRouter, globalCfg.API.Route)
	if err != nil {
		log.Fatal(err)
	}
	uAPI.Attach(votingSrv, reports, jrnl)
	if err := uAPI.EnableHandlers(api.AllHandlers...); err != nil {
		log.Fatal(err)
	}

	log.Infow("startup complete", "address", httpRouter.Address().String())

	// close if interrupt received
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Warnf("received SIGTERM, exiting at %s", time.Now().Format(time.RFC850))
	cancel()
	<-journalDone
}
