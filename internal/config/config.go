package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is stored as YAML on disk and travels as JSON over the local
// settings API, hence the double tags.
type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"dataDir"`
	} `yaml:"app" json:"app"`

	API struct {
		// Base address of the job-board backend. Empty means the
		// built-in fallback.
		BaseURL string `yaml:"base_url" json:"baseUrl"`
	} `yaml:"api" json:"api"`

	// Presentational links rendered in the footer.
	Links struct {
		ContactURL string `yaml:"contact_url" json:"contactUrl"`
		RepoURL    string `yaml:"repo_url" json:"repoUrl"`
	} `yaml:"links" json:"links"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
