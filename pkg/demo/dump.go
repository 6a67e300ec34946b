package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/travigo/stationmanager/pkg/registry"
)

type DumpFormat string

const (
	DumpFormatNone   DumpFormat = ""
	DumpFormatJSON   DumpFormat = "json"
	DumpFormatCSV    DumpFormat = "csv"
	DumpFormatPretty DumpFormat = "pretty"
)

func ParseDumpFormat(s string) (DumpFormat, error) {
	format := DumpFormat(strings.ToLower(strings.TrimSpace(s)))
	if format == "none" {
		return DumpFormatNone, nil
	}

	switch format {
	case DumpFormatNone, DumpFormatJSON, DumpFormatCSV, DumpFormatPretty:
		return format, nil
	default:
		return DumpFormatNone, fmt.Errorf("unknown dump format %q", s)
	}
}

type manifestRecord struct {
	Vehicle       string `csv:"vehicle"`
	Kind          string `csv:"kind"`
	Route         string `csv:"route"`
	PassengerID   string `csv:"passenger_id"`
	PassengerName string `csv:"passenger_name"`
}

func Dump(out io.Writer, snapshot *registry.Snapshot, format DumpFormat) error {
	switch format {
	case DumpFormatNone:
		return nil
	case DumpFormatJSON:
		return dumpJSON(out, snapshot)
	case DumpFormatCSV:
		return dumpManifest(out, snapshot)
	case DumpFormatPretty:
		_, err := pretty.Fprintf(out, "%# v\n", snapshot)
		return err
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

func dumpJSON(out io.Writer, snapshot *registry.Snapshot) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, snapshot)
	if err != nil {
		return fmt.Errorf("sheriff could not reduce snapshot: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(reduced)
}

// dumpManifest writes one row per booked passenger on every vehicle
func dumpManifest(out io.Writer, snapshot *registry.Snapshot) error {
	names := map[string]string{}
	for _, passenger := range snapshot.Passengers {
		names[passenger.PrimaryIdentifier] = passenger.Name
	}

	records := []*manifestRecord{}

	for _, vehicle := range snapshot.Vehicles {
		for _, passengerIdentifier := range vehicle.BookedPassengers {
			records = append(records, &manifestRecord{
				Vehicle:       vehicle.PrimaryIdentifier,
				Kind:          string(vehicle.Kind),
				Route:         vehicle.Route,
				PassengerID:   passengerIdentifier,
				PassengerName: names[passengerIdentifier],
			})
		}
	}

	return gocsv.Marshal(&records, out)
}
