package config

// These consts are the defaults of the node flags
const (
	DefaultAPIRoute            = "/"
	DefaultListenPort          = 9090
	DefaultTimeOffsetHours     = 3
	DefaultJournalQueueSize    = 10 << 10
	DefaultJournalFlushSeconds = 2
	DefaultReportCacheSize     = 256
	// ConfigFileName is the name of the config file, without extension,
	// stored in the data dir
	ConfigFileName = "votacion"
)
