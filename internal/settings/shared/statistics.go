package shared

// StatisticsSettings configures request statistics collection. The domain
// carries no precomputed schema, it is inferred from the defaults at startup.
type StatisticsSettings struct {
	// Enabled turns statistics collection on.
	Enabled bool `json:"enabled"`
	// ResolvedRequestsInterval is the aggregation window for resolved request counters.
	ResolvedRequestsInterval string `json:"resolvedRequestsInterval" validate:"oneof=daily weekly monthly yearly"`
}

// DefaultStatisticsSettings returns the statistics domain defaults.
func DefaultStatisticsSettings() StatisticsSettings {
	return StatisticsSettings{
		Enabled:                  true,
		ResolvedRequestsInterval: "monthly",
	}
}
