package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	Vault struct {
		FilePath string `json:"file_path"`
	} `json:"vault,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Shell struct {
		PollInterval   Duration `json:"poll_interval"`
		ChunkSize      int      `json:"chunk_size"`
		ScrollbackSize int      `json:"scrollback_size"`
		HistoryLimit   int      `json:"history_limit"`
		TermType       string   `json:"term"`
		PersistHistory bool     `json:"persist_history"`
	} `json:"shell,omitempty"`

	Adapter struct {
		ConnectTimeout Duration `json:"connect_timeout"`
		KnownHostsPath string   `json:"known_hosts"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HistoryBuffer int `json:"history_buffer"`
	} `json:"workers,omitempty"`

	Log struct {
		FilePath string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			FilePath: jsonCfg.Vault.FilePath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Shell: Shell{
			PollInterval:   time.Duration(jsonCfg.Shell.PollInterval),
			ChunkSize:      jsonCfg.Shell.ChunkSize,
			ScrollbackSize: jsonCfg.Shell.ScrollbackSize,
			HistoryLimit:   jsonCfg.Shell.HistoryLimit,
			TermType:       jsonCfg.Shell.TermType,
			PersistHistory: jsonCfg.Shell.PersistHistory,
		},
		Adapter: Adapter{
			ConnectTimeout: time.Duration(jsonCfg.Adapter.ConnectTimeout),
			KnownHostsPath: jsonCfg.Adapter.KnownHostsPath,
		},
		Workers: Workers{
			HistoryBuffer: jsonCfg.Workers.HistoryBuffer,
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
