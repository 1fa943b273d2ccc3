package overlay

// Availability classifies how a tile's traffic overlay relates to the data
// a remote collaborator can currently serve (spec sections 6 and 9).
type Availability uint8

const (
	// IsAvailable means the overlay was built from a successful fetch.
	IsAvailable Availability = iota
	// NoData means no traffic data exists for this tile at any version.
	NoData
	// ExpiredData means the server holds a newer version than the tile's,
	// and it is still within the client's supported version range.
	ExpiredData
	// ExpiredApp means the server's version exceeds what the client
	// understands; the client itself needs an update.
	ExpiredApp
	// Unknown means the outcome could not be determined (network failure,
	// decode failure, or an unexpected response).
	Unknown
)

func (a Availability) String() string {
	switch a {
	case IsAvailable:
		return "IsAvailable"
	case NoData:
		return "NoData"
	case ExpiredData:
		return "ExpiredData"
	case ExpiredApp:
		return "ExpiredApp"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}
