package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, with an
// optional .env file for local development. Keys use dots in viper and
// underscores in the environment (SERVER_PORT -> server.port).
func InitConfig(envFile string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("no env file loaded, using environment only",
				logger.String("path", envFile),
				logger.Err(err))
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			Debug:       v.GetBool("app.debug"),
			Version:     v.GetString("app.version"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetInt("server.read.timeout"),
			WriteTimeout:    v.GetInt("server.write.timeout"),
			ShutdownTimeout: v.GetInt("server.shutdown.timeout"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("db.host"),
			Port:      v.GetInt("db.port"),
			Username:  v.GetString("db.username"),
			Password:  v.GetString("db.password"),
			Database:  v.GetString("db.database"),
			SSLMode:   v.GetString("db.ssl.mode"),
			MaxConns:  v.GetInt("db.max.conns"),
			IdleConns: v.GetInt("db.idle.conns"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool.size"),
		},
		NATS: models.NATSConfig{
			URL: v.GetString("nats.url"),
		},
		NSQ: models.NSQConfig{
			Address: v.GetString("nsq.address"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetInt("jwt.expiration"),
			Issuer:     v.GetString("jwt.issuer"),
		},
		RateLimit: models.RateLimitConfig{
			WindowSeconds:  v.GetInt("ratelimit.window.seconds"),
			SweepThreshold: v.GetInt("ratelimit.sweep.threshold"),
			SweepInterval:  v.GetInt("ratelimit.sweep.interval"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("log.level"),
			FilePath: v.GetString("log.file.path"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tripwatch")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9980)
	v.SetDefault("server.read.timeout", 15)
	v.SetDefault("server.write.timeout", 15)
	v.SetDefault("server.shutdown.timeout", 30)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "tripwatch")
	v.SetDefault("db.password", "")
	v.SetDefault("db.database", "tripwatch")
	v.SetDefault("db.ssl.mode", "disable")
	v.SetDefault("db.max.conns", 10)
	v.SetDefault("db.idle.conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool.size", 10)

	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "tripwatch")

	v.SetDefault("ratelimit.window.seconds", 5)
	v.SetDefault("ratelimit.sweep.threshold", 1000)
	v.SetDefault("ratelimit.sweep.interval", 600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.path", "")
}
