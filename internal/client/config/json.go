package config

import (
	"encoding/json"
	"os"

	"github.com/sam-ezra/todo/internal/flagx"
)

// JsonConfig is the intermediate DTO for reading the JSON config file.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DatabasePath       string `json:"database_path"`
}

// parseJson overlays values from the JSON file named by -c/-config, if any.
// An unreadable or invalid file panics: a requested config that cannot be
// honored should stop the process.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = c.ServerEndpointAddr
	cfg.DatabasePath = c.DatabasePath
}
