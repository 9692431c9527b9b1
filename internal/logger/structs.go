package logger

import (
	"time"
)

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool
}

// LogFile implements a file based logger.
type LogFile struct {
	// Legacy non docker env file logging.
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	ErrorLog        string `toml:"errorLog"`
	ErrorMaxSize    int    `toml:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"`

	InfoLog        string `toml:"infoLog"`
	InfoMaxSize    int    `toml:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"`

	TraceLog        string `toml:"traceLog"`
	TraceMaxSize    int    `toml:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge"`

	WarnLog        string `toml:"warnLog"`
	WarnMaxSize    int    `toml:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge"`
}

// DataDog implements a datadog config.
type DataDog struct {
	ServiceName string        `toml:"serviceName"`
	APIKey      string        `toml:"apiKey"` // API Key defined at datadog
	Enabled     bool          `toml:"enabled"`
	Site        string        `toml:"site"`    // Regional Site aka DD_SITE ("datadoghq.eu")
	Timeout     time.Duration `toml:"timeout"` // how long to wait to send a log entry to datadog.
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel"` // info, warn, error.

	ReportCaller bool `toml:"reportCaller"`

	AppName     string `toml:"appName"`
	ServiceName string `toml:"serviceName"`

	// Console used mainly for docker and dev.
	Console Console `toml:"console"`

	// Legacy non docker env file logging.
	File LogFile `toml:"file"`

	// DataDog failure and log shipping.
	DataDog DataDog `toml:"dataDog"`
}
