package resolve

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy -output=strategy_string.go

// Strategy records which resolution step produced a value.
type Strategy int

const (
	// StrategyNone means no step produced a value.
	StrategyNone Strategy = iota
	// StrategyCandidate means an extracted pair cleared the score threshold.
	StrategyCandidate
	// StrategyProximity means the field name was found inline on a raw line.
	StrategyProximity
	// StrategyAdjacent means the value was taken from the line below the field name.
	StrategyAdjacent
)

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
