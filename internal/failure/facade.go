// Package failure records infrastructure failures for diagnostics.
//
// Failures reported here never change the outcome of the operation that hit
// them. They are logged, counted for Prometheus and, when enabled, shipped to
// DataDog in the background.
package failure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/logger"
)

// defaultSubmitTimeout applies when the config leaves the timeout unset.
const defaultSubmitTimeout = 5 * time.Second

var (
	// failureCounter is a singleton for the counter vec.
	failureCounter *prometheus.CounterVec //nolint:gochecknoglobals
)

// Facade collects failure reports from the other subsystems.
type Facade struct {
	cfg      logger.DataDog
	logs     *datadogV2.LogsApi
	counter  *prometheus.CounterVec
	hostname string
}

// New creates the failure facade. DataDog submission stays off unless the
// config enables it.
func New(cfg logger.DataDog) *Facade {
	if failureCounter == nil {
		failureCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "failures_total",
				Help: "Number of recorded failures, differentiated by source.",
			},
			[]string{"source"},
		)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	f := &Facade{
		cfg:      cfg,
		counter:  failureCounter,
		hostname: hostname,
	}

	if cfg.Enabled {
		f.logs = datadogV2.NewLogsApi(datadog.NewAPIClient(datadog.NewConfiguration()))
	}

	return f
}

// ReportFailure records a failure observed by the given source. The report
// itself never fails the caller.
func (f *Facade) ReportFailure(source string, err error) {
	if err == nil {
		return
	}

	log.Error().Err(err).Str("source", source).Msg("failure recorded")
	f.counter.WithLabelValues(source).Inc()

	if f.logs != nil {
		go f.submit(source, err)
	}
}

// submit ships one failure to DataDog.
func (f *Facade) submit(source string, err error) {
	timeout := f.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ctx = context.WithValue(ctx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: f.cfg.APIKey},
	})
	ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{
		"site": f.cfg.Site,
	})

	body := []datadogV2.HTTPLogItem{
		{
			Ddsource: datadog.PtrString("go-artifact-depot"),
			Ddtags:   datadog.PtrString("source:" + source),
			Hostname: datadog.PtrString(f.hostname),
			Message:  fmt.Sprintf("%s: %v", source, err),
			Service:  datadog.PtrString(f.cfg.ServiceName),
		},
	}

	if _, _, errSubmit := f.logs.SubmitLog(ctx, body); errSubmit != nil {
		log.Warn().Err(errSubmit).Str("source", source).Msg("failed to ship failure to DataDog")
	}
}
