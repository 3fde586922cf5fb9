package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig reads a .env file from the given directory (if present) and wires
// viper to the process environment. Missing files are fine; flags and env vars
// still apply.
func LoadConfig(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err == nil {
		logrus.Debugf("[CONFIG] Loaded environment from %s", envFile)
	}
	viper.AutomaticEnv()
}
