package demo

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationmanager/pkg/fixtures"
	"github.com/travigo/stationmanager/pkg/query"
	"github.com/travigo/stationmanager/pkg/transcript"
	"github.com/urfave/cli/v2"
)

func newFixtureFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "fixture",
		Usage: "scenario YAML file, defaults to the built in demo",
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Runs station manager scenarios",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "play a scenario and print the transcript",
				Flags: []cli.Flag{
					newFixtureFlag(),
					&cli.StringFlag{
						Name:  "dump",
						Usage: "dump the final state as json, csv or pretty",
					},
				},
				Action: func(c *cli.Context) error {
					config, err := configFromContext(c)
					if err != nil {
						return err
					}

					scenario, err := fixtures.Load(config.FixturePath)
					if err != nil {
						return err
					}

					runner := NewRunner(transcript.NewPrinter(os.Stdout))
					snapshot, err := runner.Run(scenario)
					if err != nil {
						return err
					}

					return Dump(os.Stdout, snapshot, config.DumpFormat)
				},
			},
			{
				Name:  "vehicles",
				Usage: "play a scenario silently and list the vehicles matching an expression",
				Flags: []cli.Flag{
					newFixtureFlag(),
					&cli.StringFlag{
						Name:  "where",
						Usage: "expression to filter vehicles, eg. 'Kind == \"Express\" && Available > 0'",
					},
				},
				Action: func(c *cli.Context) error {
					config, err := configFromContext(c)
					if err != nil {
						return err
					}

					scenario, err := fixtures.Load(config.FixturePath)
					if err != nil {
						return err
					}

					runner := NewRunner(transcript.NewPrinter(io.Discard))
					if err := runner.Setup(scenario); err != nil {
						return err
					}

					vehicles, err := runner.Registry.FindVehicles(&query.Vehicle{Expression: c.String("where")})
					if err != nil {
						return err
					}

					if len(vehicles) == 0 {
						log.Info().Str("where", c.String("where")).Msg("No vehicles matched")
						return nil
					}

					printer := transcript.NewPrinter(os.Stdout)
					for _, vehicle := range vehicles {
						printer.DisplayVehicle(vehicle)
					}

					return nil
				},
			},
		},
	}
}

// configFromContext lets command flags override the environment configuration
func configFromContext(c *cli.Context) (Config, error) {
	config, err := GetConfig()
	if err != nil {
		return config, err
	}

	if c.IsSet("fixture") {
		config.FixturePath = c.String("fixture")
	}

	if c.IsSet("dump") {
		format, err := ParseDumpFormat(c.String("dump"))
		if err != nil {
			return config, err
		}
		config.DumpFormat = format
	}

	return config, nil
}
