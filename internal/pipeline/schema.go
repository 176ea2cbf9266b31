package pipeline

// ColumnType is the declared storage type of a canonical column
type ColumnType int

const (
	Float32Col ColumnType = iota
	Int32Col
	TimestampCol // Unix milliseconds
)

// Schema maps each canonical column name to its declared type. Normalized
// output carries exactly these columns; anything else in the input is
// dropped.
var Schema = map[string]ColumnType{
	"fare_amount":       Float32Col,
	"pickup_datetime":   TimestampCol,
	"dropoff_datetime":  TimestampCol,
	"passenger_count":   Int32Col,
	"rate_code":         Int32Col,
	"trip_distance":     Float32Col,
	"pickup_longitude":  Float32Col,
	"pickup_latitude":   Float32Col,
	"dropoff_longitude": Float32Col,
	"dropoff_latitude":  Float32Col,
}

// DefaultAliases maps known raw export headers (after trim+lowercase) to
// canonical column names. Headers already matching a canonical name need no
// entry.
var DefaultAliases = map[string]string{
	"tpep_pickup_datetime":  "pickup_datetime",
	"tpep_dropoff_datetime": "dropoff_datetime",
	"lpep_pickup_datetime":  "pickup_datetime",
	"lpep_dropoff_datetime": "dropoff_datetime",
	"ratecodeid":            "rate_code",
}

// Config is the immutable configuration for one pipeline pass
type Config struct {
	Aliases map[string]string
	Bounds  Bounds
}

// DefaultConfig returns the stock alias map and outlier bounds
func DefaultConfig() Config {
	return Config{
		Aliases: DefaultAliases,
		Bounds:  DefaultBounds,
	}
}
