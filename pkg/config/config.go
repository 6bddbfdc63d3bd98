package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. Variables already set in the environment win.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Println("loading envs from file skipped: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

func (c *Config) GetBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}
