package sarima

import "fmt"

// Order specifies a seasonal ARIMA model (p,d,q)(P,D,Q)[m].
type Order struct {
	P int `yaml:"p"` // non-seasonal AR order
	D int `yaml:"d"` // non-seasonal differencing order
	Q int `yaml:"q"` // non-seasonal MA order

	SP int `yaml:"sp"` // seasonal AR order
	SD int `yaml:"sd"` // seasonal differencing order
	SQ int `yaml:"sq"` // seasonal MA order
	M  int `yaml:"m"`  // seasonal period
}

// DefaultOrder is the multiplicative (1,1,1)(1,1,1)[12] specification used
// for daily closing prices.
func DefaultOrder() Order {
	return Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 12}
}

// Seasonal reports whether the order carries any seasonal terms.
func (o Order) Seasonal() bool {
	return o.M > 1 && (o.SP > 0 || o.SD > 0 || o.SQ > 0)
}

// MinObservations returns the smallest series length the order can be
// estimated from: two full seasonal cycles for seasonal models, a small
// fixed margin over the parameter count otherwise.
func (o Order) MinObservations() int {
	if o.Seasonal() {
		return 2 * o.M
	}
	return o.P + o.D + o.Q + 10
}

// Params returns the number of estimated coefficients including the intercept.
func (o Order) Params() int {
	return o.P + o.Q + o.SP + o.SQ + 1
}

// Validate checks that the order is well-formed.
func (o Order) Validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 || o.SP < 0 || o.SD < 0 || o.SQ < 0 {
		return fmt.Errorf("order terms must be non-negative: %s", o)
	}
	if (o.SP > 0 || o.SD > 0 || o.SQ > 0) && o.M < 2 {
		return fmt.Errorf("seasonal terms require period m >= 2: %s", o)
	}
	return nil
}

func (o Order) String() string {
	return fmt.Sprintf("(%d,%d,%d)(%d,%d,%d)[%d]", o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}
