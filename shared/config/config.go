package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string   `yaml:"addr"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	StorePath      string   `yaml:"store_path"` // device-local JSON store (accounts + session)
	TemplatesPath  string   `yaml:"templates_path"`
	ContentPath    string   `yaml:"content_path"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	QuoteHistory   int      `yaml:"quote_history"` // max rows returned by the quote history endpoint
	SecureCookies  bool     `yaml:"secure_cookies"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

// Pg is optional: an empty host disables quote persistence and the site
// estimates without saving anything.
type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (p Pg) Enabled() bool {
	return p.Host != ""
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	public.applyDefaults()

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}

func (p *Public) applyDefaults() {
	if p.Addr == "" {
		p.Addr = ":8080"
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.StorePath == "" {
		p.StorePath = "data/medinsure.json"
	}
	if p.TemplatesPath == "" {
		p.TemplatesPath = "templates"
	}
	if p.ContentPath == "" {
		p.ContentPath = "content"
	}
	if p.QuoteHistory == 0 {
		p.QuoteHistory = 20
	}
}
