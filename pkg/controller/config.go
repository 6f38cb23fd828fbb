package controller

import (
	"encoding/json"
	"log"
	"os"

	"github.com/jason89923/servoctl/pkg/servo"
)

const configFile = ".servoctl.config.json"

// Configuration is the optional per-deployment config file. A missing
// file means compiled-in defaults; a broken one is logged and ignored.
type Configuration struct {
	Calibration servo.Table `json:"calibration,omitempty"`
}

// LoadConfig reads the config file from the working directory.
func LoadConfig() Configuration {
	var config Configuration
	data, _ := os.ReadFile(configFile)
	if data != nil {
		if err := json.Unmarshal(data, &config); err != nil {
			log.Printf("failed loading config file: %v", err)
			return Configuration{}
		}
	}
	return config
}

// CalibrationTable returns the configured calibration curve, falling back
// to the default when the file has none or the points fail validation.
func (c Configuration) CalibrationTable() servo.Table {
	if len(c.Calibration) == 0 {
		return servo.DefaultTable
	}
	if err := c.Calibration.Validate(); err != nil {
		log.Printf("ignoring calibration from config file: %v", err)
		return servo.DefaultTable
	}
	return c.Calibration
}
