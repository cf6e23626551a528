package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"muzzammil.xyz/jsonc"
)

type Settings struct {
	BotToken     string        `json:"bot_token"`
	EnableDebug  bool          `json:"enable_debug"`
	DBFile       string        `json:"db_file"`
	FetchTimeout time.Duration `json:"-"`
	UserAgent    string        `json:"user_agent"`
	HostInterval time.Duration `json:"-"` // zero disables per-host rate limiting
	MetricsAddr  string        `json:"metrics_addr"`
}

const defaultFetchTimeout = 20 * time.Second

var _ json.Unmarshaler = (*Settings)(nil)

func (s *Settings) UnmarshalJSON(data []byte) error {
	type Alias Settings
	aux := &struct {
		*Alias
		FetchTimeout string `json:"fetch_timeout"`
		HostInterval string `json:"host_interval"`
	}{
		Alias: (*Alias)(s),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if s.DBFile == "" {
		return errors.New("db_file is required")
	}

	s.FetchTimeout = defaultFetchTimeout
	if aux.FetchTimeout != "" {
		d, err := time.ParseDuration(aux.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetch_timeout: %w", err)
		}
		if d <= 0 {
			return errors.New("fetch_timeout must be positive")
		}
		s.FetchTimeout = d
	}

	if aux.HostInterval != "" {
		d, err := time.ParseDuration(aux.HostInterval)
		if err != nil {
			return fmt.Errorf("invalid host_interval: %w", err)
		}
		s.HostInterval = d
	}

	return nil
}

func LoadSettings(filePath string) (Settings, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}

	var config Settings
	if err := jsonc.Unmarshal(data, &config); err != nil {
		return Settings{}, err
	}
	return config, nil
}
