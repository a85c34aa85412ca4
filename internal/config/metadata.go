package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// MetadataFile is the manifest the launcher reads to discover the plugin
const MetadataFile = "plugin.json"

// ErrMetadataNotFound is returned when the plugin directory has no manifest
var ErrMetadataNotFound = errors.New("plugin metadata not found")

// Metadata mirrors plugin.json
type Metadata struct {
	ID              string `json:"ID"`
	ActionKeyword   string `json:"ActionKeyword"`
	Name            string `json:"Name"`
	Description     string `json:"Description"`
	Author          string `json:"Author"`
	Version         string `json:"Version"`
	Language        string `json:"Language"`
	Website         string `json:"Website"`
	IcoPath         string `json:"IcoPath"`
	ExecuteFileName string `json:"ExecuteFileName"`
}

// LoadMetadata reads plugin.json from dir
func LoadMetadata(dir string) (*Metadata, error) {
	path := filepath.Join(dir, MetadataFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMetadataNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &meta, nil
}
