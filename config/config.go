// Package config holds the configuration of the votacion node.
package config

import (
	"github.com/Vicen621-Facultad/votacion/db"
)

// Config stores global configs for the node
type Config struct {
	// DataDir is the path where the database and the config file are stored
	DataDir string
	// DBType is the database backend, pebble or leveldb
	DBType string
	// LogLevel logging level
	LogLevel string
	// LogOutput logging output
	LogOutput string
	// LogErrorFile for logging warning, error and fatal messages
	LogErrorFile string
	// SaveConfig overwrites the config file with the CLI provided flags
	SaveConfig bool
	// SigningKey is the hex private key of the node. Its address becomes the
	// admin when the voting state is created, unless Admin is set.
	SigningKey string
	// Admin is the address of the admin for a new voting state
	Admin string
	// Reporter is the address allowed to request reports for a new voting state
	Reporter string
	// TimeOffsetHours is the offset added to local dates to get UTC
	TimeOffsetHours int
	// JournalQueueSize is the number of journal entries waiting to be stored
	JournalQueueSize int
	// JournalFlushSeconds is the period of the journal flushes
	JournalFlushSeconds int
	// ReportCacheSize is the number of elections whose reports are cached
	ReportCacheSize int
	// API configuration options
	API *APIConfig
	// Metrics config options
	Metrics *MetricsCfg
}

// APIConfig defines the HTTP API configuration
type APIConfig struct {
	// Route is the base path of the API handlers
	Route string
	// ListenHost is the host where the HTTP server listens
	ListenHost string
	// ListenPort is the port where the HTTP server listens
	ListenPort int
	// Ssl configures letsencrypt TLS certificates
	Ssl struct {
		// Domain for the TLS certificate, disabled if empty
		Domain string
		// DirCert is the directory where the certificates are cached
		DirCert string
	}
}

// MetricsCfg initializes the metrics config
type MetricsCfg struct {
	Enabled         bool
	Path            string
	RefreshInterval int
}

// Error helps to handle better config errors on startup
type Error struct {
	// Critical indicates if the error encountered is critical and the app must be stopped
	Critical bool
	// Message error message
	Message string
}

// ValidDBType returns true if the database type is supported.
func (c *Config) ValidDBType() bool {
	return c.DBType == db.TypePebble || c.DBType == db.TypeLevelDB
}

// NewConfig returns a Config with the default values.
func NewConfig() *Config {
	return &Config{
		DBType:              db.TypePebble,
		LogLevel:            "info",
		LogOutput:           "stdout",
		TimeOffsetHours:     DefaultTimeOffsetHours,
		JournalQueueSize:    DefaultJournalQueueSize,
		JournalFlushSeconds: DefaultJournalFlushSeconds,
		ReportCacheSize:     DefaultReportCacheSize,
		API: &APIConfig{
			Route:      DefaultAPIRoute,
			ListenHost: "0.0.0.0",
			ListenPort: DefaultListenPort,
		},
		Metrics: &MetricsCfg{
			Path:            "/metrics",
			RefreshInterval: 5,
		},
	}
}
