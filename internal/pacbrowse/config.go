package pacbrowse

import (
	"bufio"
	"os"
	"strings"

	"github.com/gookit/color"
)

// Config struct
type Config struct {
	Values map[string]string
}

// Load /etc/pacbrowse.conf and apply defaults
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	// Attempt to read the file
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"'`)
			cfg.Values[key] = val
		}
		if err := scanner.Err(); err != nil {
			return cfg, err
		}
	}

	// Merge PACBROWSE_* env overrides
	mergeEnvOverrides(cfg)

	return cfg, nil
}

// Merge PACBROWSE_* env overrides
func mergeEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PACBROWSE_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				cfg.Values[parts[0]] = parts[1]
			}
		}
	}
}

func initConfig(cfg *Config) {
	pacmanBin = cfg.Values["PACBROWSE_PACMAN"]
	if pacmanBin == "" {
		pacmanBin = "pacman"
	}

	sudoBin = cfg.Values["PACBROWSE_SUDO"]
	if sudoBin == "" {
		sudoBin = "sudo"
	}

	// helperBin stays empty here; resolveHelper picks paru/yay unless the
	// config names one explicitly.
	helperBin = cfg.Values["PACBROWSE_AUR_HELPER"]

	Debug = cfg.Values["PACBROWSE_DEBUG"] == "1"

	if cfg.Values["PACBROWSE_NOCOLOR"] == "1" {
		color.Disable()
	}
}
