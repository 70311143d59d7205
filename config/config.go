package config

import (
	"strings"
	"time"

	"CricketTrumps/internal/utils"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // empty keeps match history in memory
	}
	Redis struct {
		Addr     string // empty keeps rooms in memory
		Password string
		DB       int
		TTL      time.Duration `mapstructure:"ttl"`
	}
	JWT struct {
		Secret string
		TTL    time.Duration `mapstructure:"ttl"`
	}
	Log struct {
		Level string
	}
	Game struct {
		CPUDelay        time.Duration `mapstructure:"cpuDelay"`
		CPUSuggestAfter time.Duration `mapstructure:"cpuSuggestAfter"`
		SweepSpec       string        `mapstructure:"sweepSpec"`
		Seed            int64         // 0 seeds from the clock
	}
}

var C Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":3001")
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 6*time.Hour)
	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("game.cpuDelay", 1500*time.Millisecond)
	v.SetDefault("game.cpuSuggestAfter", 5*time.Minute)
	v.SetDefault("game.sweepSpec", "@every 30s")
	v.SetDefault("game.seed", 0)
}

// LoadFile reads path into C. Environment variables such as REDIS_ADDR or
// GAME_CPUDELAY override the file.
func LoadFile(path string) error {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return err
	}
	C = c
	return nil
}

func Load() {
	if err := LoadFile("config/config.yaml"); err != nil {
		utils.Log.Fatal("Failed to load config", "err", err)
	}
}
