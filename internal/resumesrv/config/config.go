package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "/etc/resumesrv/resumesrv.conf"

type DBParam struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"sslmode"`
	PoolMin  int    `toml:"pool_min"`
	PoolMax  int    `toml:"pool_max"`
}

type ConfigParam struct {
	ServerPort string  `toml:"server_port"`
	HandleCORS bool    `toml:"handle_cors"`
	LogLevel   string  `toml:"log_level"`
	LogFile    string  `toml:"log_file"`
	DB         DBParam `toml:"db"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

func LoadConfig(filename string) error {
	if filename == "" {
		cfg = defaultConfig()
		return nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	var cp ConfigParam
	if _, err := toml.Decode(string(content), &cp); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}
	applyDefaults(&cp)
	cfg = &cp
	return nil
}

func defaultConfig() *ConfigParam {
	cp := &ConfigParam{
		ServerPort: "8196",
		HandleCORS: true,
		LogLevel:   "info",
	}
	applyDefaults(cp)
	return cp
}

func applyDefaults(cp *ConfigParam) {
	if cp.ServerPort == "" {
		cp.ServerPort = "8196"
	}
	if cp.LogLevel == "" {
		cp.LogLevel = "info"
	}
	if cp.DB.Host == "" {
		cp.DB.Host = "localhost"
	}
	if cp.DB.Port == 0 {
		cp.DB.Port = 5432
	}
	if cp.DB.Name == "" {
		cp.DB.Name = "resume"
	}
	if cp.DB.User == "" {
		cp.DB.User = "resume_api"
	}
	if cp.DB.SSLMode == "" {
		cp.DB.SSLMode = "disable"
	}
	if cp.DB.PoolMin <= 0 {
		cp.DB.PoolMin = 2
	}
	if cp.DB.PoolMax < cp.DB.PoolMin {
		cp.DB.PoolMax = 10
	}
}

// Dsn renders the connection string for the configured database.
func (p DBParam) Dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

func init() {
	if err := LoadConfig(""); err != nil {
		panic(err)
	}
}
