package utils

import (
	"encoding/json"
	"os"

	"arenaserver/models"
)

// LoadConfig reads server settings from a JSON file. A missing file is not
// an error; the defaults serve a local setup.
func LoadConfig(filename string) (models.Config, error) {
	config := models.Config{
		ListenAddr: ":8080",
		PublicDir:  "./public",
	}

	configFile, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer configFile.Close()

	err = json.NewDecoder(configFile).Decode(&config)
	return config, err
}
