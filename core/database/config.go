package database

// Driver names accepted in Config.Driver.
const (
	DriverMySQL   = "mysql"
	DriverSQLite  = "sqlite"
	DriverMongoDB = "mongodb"
)

// Config holds configuration for one database connection.
// The default connection is read from the environment; extra named
// connections are declared in the seeding plan.
type Config struct {
	// Driver is the database driver (mysql, sqlite, mongodb).
	Driver string `mapstructure:"driver" yaml:"driver" default:"mysql"`
	// Host is the database host.
	Host string `mapstructure:"host" yaml:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" yaml:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" yaml:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" yaml:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" yaml:"name" default:"seed"`
	// URI overrides Host/Port/User/Password for mongodb when set.
	URI string `mapstructure:"uri" yaml:"uri" default:""`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" default:"30"`
}

func (c Config) timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 30
	}
	return c.TimeoutSeconds
}
