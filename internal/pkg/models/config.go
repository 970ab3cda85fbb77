package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	SMTP     SMTPConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// SMTPConfig contains outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// JWTConfig contains JWT authentication configuration.
// Access and refresh tokens are signed with independent secrets so that one
// kind can never be presented in place of the other.
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in minutes
	Issuer            string
}

// OTPConfig contains one-time password configuration
type OTPConfig struct {
	Store         string // "memory" or "redis"
	Expiration    int    // in seconds
	SweepInterval int    // in seconds, memory store only
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
