package config

// DB holds the database configuration settings.
type DB struct {
	Extras     string `toml:"extras"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	Name       string `toml:"name"`
	GormEngine string `toml:"gormEngine"`
}

const (
	// EngineMySQL selects the mysql gorm driver.
	EngineMySQL = "mysql"
	// EnginePostgres selects the postgres gorm driver.
	EnginePostgres = "postgres"
	// EngineSQLite selects the pure go sqlite gorm driver.
	EngineSQLite = "sqlite"
)
