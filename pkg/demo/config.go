package demo

import (
	"github.com/travigo/stationmanager/pkg/util"
)

const defaultFixturePath = ""
const defaultDumpFormat = "none"

type Config struct {
	// Empty means the embedded demo scenario
	FixturePath string
	DumpFormat  DumpFormat
}

// GetConfig returns the demo configuration from environment variables or defaults
func GetConfig() (Config, error) {
	config := Config{
		FixturePath: defaultFixturePath,
	}

	env := util.GetEnvironmentVariables()

	if env["TRAVIGO_FIXTURE"] != "" {
		config.FixturePath = env["TRAVIGO_FIXTURE"]
	}

	format, err := ParseDumpFormat(util.GetEnvironmentVariable("TRAVIGO_DUMP_FORMAT", defaultDumpFormat))
	if err != nil {
		return config, err
	}
	config.DumpFormat = format

	return config, nil
}
