package database

// Config holds configuration for the database connection.
// The connection is optional; it is only needed when a ledger is read
// from a database table instead of object storage.
type Config struct {
	// Host is the database server hostname.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database server port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database username.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database schema name.
	Name string `mapstructure:"name" default:"storefront"`
	// TimeoutSeconds is the connection/read/write timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
