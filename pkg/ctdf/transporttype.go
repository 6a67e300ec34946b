package ctdf

import "strings"

type TransportType string

//goland:noinspection GoUnusedConst
const (
	TransportTypeBus     TransportType = "bus"
	TransportTypeCoach   TransportType = "coach"
	TransportTypeTram    TransportType = "tram"
	TransportTypeTrain   TransportType = "train"
	TransportTypeMetro   TransportType = "metro"
	TransportTypeFerry   TransportType = "ferry"
	TransportTypeUnknown TransportType = "UNKNOWN"
)

// ParseTransportType keeps unrecognised tags as-is, station types are free-form
func ParseTransportType(s string) TransportType {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TransportTypeUnknown
	}

	return TransportType(strings.ToLower(trimmed))
}
