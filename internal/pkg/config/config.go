package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// InitConfig loads configuration from an optional env-style file plus the
// process environment. Environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		// Missing file is fine for non-local environments
		_ = v.ReadInConfig()
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "barbershop-auth")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read.timeout", 15)
	v.SetDefault("server.write.timeout", 15)
	v.SetDefault("server.shutdown.timeout", 10)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.database", "barbershop")
	v.SetDefault("db.ssl.mode", "disable")
	v.SetDefault("db.max.conns", 10)
	v.SetDefault("db.idle.conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool.size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("smtp.port", 587)

	v.SetDefault("jwt.access.expiration", 180)    // 3 hours
	v.SetDefault("jwt.refresh.expiration", 10080) // 7 days
	v.SetDefault("jwt.issuer", "barbershop-auth")

	v.SetDefault("otp.store", "memory")
	v.SetDefault("otp.expiration", 300) // 5 minutes
	v.SetDefault("otp.sweep.interval", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.path", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	// Server config
	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read.timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write.timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown.timeout")

	// Database config
	configs.Database.Host = v.GetString("db.host")
	configs.Database.Port = v.GetInt("db.port")
	configs.Database.Username = v.GetString("db.username")
	configs.Database.Password = v.GetString("db.password")
	configs.Database.Database = v.GetString("db.database")
	configs.Database.SSLMode = v.GetString("db.ssl.mode")
	configs.Database.MaxConns = v.GetInt("db.max.conns")
	configs.Database.IdleConns = v.GetInt("db.idle.conns")

	// Redis config
	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool.size")

	// NSQ config
	configs.NSQ.Address = v.GetString("nsq.address")
	configs.NSQ.Enabled = v.GetBool("nsq.enabled")

	// SMTP config
	configs.SMTP.Host = v.GetString("smtp.host")
	configs.SMTP.Port = v.GetInt("smtp.port")
	configs.SMTP.Username = v.GetString("smtp.username")
	configs.SMTP.Password = v.GetString("smtp.password")
	configs.SMTP.From = v.GetString("smtp.from")

	// JWT config
	configs.JWT.AccessSecret = v.GetString("jwt.access.secret")
	configs.JWT.RefreshSecret = v.GetString("jwt.refresh.secret")
	configs.JWT.AccessExpiration = v.GetInt("jwt.access.expiration")
	configs.JWT.RefreshExpiration = v.GetInt("jwt.refresh.expiration")
	configs.JWT.Issuer = v.GetString("jwt.issuer")

	// OTP config
	configs.OTP.Store = v.GetString("otp.store")
	configs.OTP.Expiration = v.GetInt("otp.expiration")
	configs.OTP.SweepInterval = v.GetInt("otp.sweep.interval")

	// Logger config
	configs.Logger.Level = v.GetString("log.level")
	configs.Logger.FilePath = v.GetString("log.file.path")

	return configs
}
