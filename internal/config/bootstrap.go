package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Baked-in defaults used when no packaged config.yml ships next to the
// binary. The API base URL stays empty on purpose: the client falls back
// to the production address.
const defaultYAML = `app:
  port: 38472
  data_dir: ""

api:
  base_url: ""

links:
  contact_url: "https://www.linkedin.com/in/shivang-jani/"
  repo_url: ""
`

// EnsureUserConfig guarantees a writable config.yml in the data dir,
// seeding it from the packaged default (or the baked-in one) on first
// run.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if errors.Is(err, os.ErrNotExist) {
		if werr := os.WriteFile(userPath, []byte(defaultYAML), 0o644); werr != nil {
			return "", werr
		}
		return userPath, nil
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
