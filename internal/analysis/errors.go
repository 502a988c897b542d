package analysis

import "fmt"

// InsufficientHistoryError reports a price series shorter than a calculation requires
type InsufficientHistoryError struct {
	Op   string // calculation that ran short
	Need int    // minimum bars required
	Got  int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("%s: insufficient history: need at least %d bars, got %d", e.Op, e.Need, e.Got)
}

// InvalidPriceDataError reports a malformed bar in the input series
type InvalidPriceDataError struct {
	Field  string // offending bar field
	Index  int    // bar position in the series
	Reason string
}

func (e *InvalidPriceDataError) Error() string {
	return fmt.Sprintf("invalid price data: bar %d: %s: %s", e.Index, e.Field, e.Reason)
}

// InvalidParametersError reports a trade proposal or configuration value
// that violates an ordering or positivity invariant
type InvalidParametersError struct {
	Field  string
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid parameters: %s: %s", e.Field, e.Reason)
}

// SimulationConfigError reports an unusable Monte Carlo configuration
type SimulationConfigError struct {
	Field  string
	Reason string
}

func (e *SimulationConfigError) Error() string {
	return fmt.Sprintf("simulation config: %s: %s", e.Field, e.Reason)
}
