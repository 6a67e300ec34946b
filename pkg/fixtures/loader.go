package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/demo.yaml
var defaultScenario []byte

func LoadDefault() (*Scenario, error) {
	return Decode(defaultScenario)
}

func LoadFile(path string) (*Scenario, error) {
	log.Debug().Str("path", path).Msg("Loading scenario file")

	scenarioYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scenario, err := Decode(scenarioYaml)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scenario, nil
}

// Load reads the file at path, or the embedded demo scenario when path is empty
func Load(path string) (*Scenario, error) {
	if path == "" {
		return LoadDefault()
	}

	return LoadFile(path)
}

func Decode(scenarioYaml []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(scenarioYaml))
	decoder.KnownFields(true)

	var scenario Scenario
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scenario is empty")
		}
		return nil, err
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("stations", len(scenario.Stations)).
		Int("vehicles", len(scenario.Vehicles)).
		Int("passengers", len(scenario.Passengers)).
		Int("steps", len(scenario.Steps)).
		Msg("Loaded scenario")

	return &scenario, nil
}
