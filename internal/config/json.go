package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional config file.
type StructuredJSONConfig struct {
	Editor struct {
		StatePath  string `json:"state_path"`
		ConfigPath string `json:"config_path"`
	} `json:"editor,omitempty"`

	Steam struct {
		ScanDisabled bool   `json:"scan_disabled"`
		ExtraRoot    string `json:"extra_root"`
	} `json:"steam,omitempty"`

	Log struct {
		Path string `json:"path"`
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
		Editor: Editor{
			StatePath:  jsonCfg.Editor.StatePath,
			ConfigPath: jsonCfg.Editor.ConfigPath,
		},
		Steam: Steam{
			ScanDisabled: jsonCfg.Steam.ScanDisabled,
			ExtraRoot:    jsonCfg.Steam.ExtraRoot,
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
