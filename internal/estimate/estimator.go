package estimate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidBaseCost is returned when a base cost is not a positive number
var ErrInvalidBaseCost = errors.New("base cost must be a positive number")

// Source supplies the random draws used by the estimator
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Guess band around the adjusted base: [1-guessFloor, 1-guessFloor+guessSpread)
const (
	guessSpread = 0.2
	guessFloor  = 0.05
)

// Result is the outcome of a single estimate
type Result struct {
	LowEstimate  float64 `json:"lowEstimate"`
	BaseEstimate float64 `json:"baseEstimate"`
	HighEstimate float64 `json:"highEstimate"`
	WoodyGuess   float64 `json:"woodyGuess"`
	Confidence   string  `json:"confidence"`
}

// Request is a validated estimate input
type Request struct {
	BaseCost  float64
	Category  string
	RiskLevel RiskLevel
}

// NewRequest validates the inputs of an estimate. An empty risk level means DefaultRiskLevel.
func NewRequest(baseCost float64, category string, riskLevel string) (Request, error) {
	if math.IsNaN(baseCost) || math.IsInf(baseCost, 0) || baseCost <= 0 {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidBaseCost, baseCost)
	}
	level, err := ParseRiskLevel(riskLevel)
	if err != nil {
		return Request{}, err
	}
	return Request{
		BaseCost:  baseCost,
		Category:  category,
		RiskLevel: level,
	}, nil
}

// Estimator computes Woody's wild guesses from a set of factors.
// It holds no mutable state and is safe for concurrent use when its Source is.
type Estimator struct {
	factors Factors
	source  Source
}

// Option configures an Estimator
type Option func(*Estimator)

// WithSource replaces the random source
func WithSource(source Source) Option {
	return func(e *Estimator) {
		e.source = source
	}
}

// WithFactors replaces the estimation tables
func WithFactors(factors Factors) Option {
	return func(e *Estimator) {
		e.factors = factors.Clone()
	}
}

// NewEstimator creates an estimator using the default factors and the process-wide random generator
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		factors: DefaultFactors(),
		source:  globalSource{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Factors returns a copy of the tables used by the estimator
func (e *Estimator) Factors() Factors {
	return e.factors.Clone()
}

// Estimate computes the low/base/high band and Woody's guess for a base cost.
// riskLevel must be valid; Estimate panics otherwise. Use NewRequest at input boundaries.
func (e *Estimator) Estimate(baseCost float64, category string, riskLevel RiskLevel) Result {
	risk, ok := e.factors.RiskBand(riskLevel)
	if !ok {
		panic(fmt.Sprintf("estimate: unknown risk level %q", riskLevel))
	}

	adjustedBase := baseCost * e.factors.CategoryMultiplier(category)
	guess := adjustedBase * (1 + e.source.Float64()*guessSpread - guessFloor)

	return Result{
		LowEstimate:  roundTenth(adjustedBase * risk.Min),
		BaseEstimate: roundTenth(adjustedBase),
		HighEstimate: roundTenth(adjustedBase * risk.Max),
		WoodyGuess:   roundTenth(guess),
		Confidence:   riskLevel.Confidence(),
	}
}

// EstimateRequest runs Estimate on a validated request
func (e *Estimator) EstimateRequest(req Request) Result {
	return e.Estimate(req.BaseCost, req.Category, req.RiskLevel)
}

// Quote returns one of Woody's quotes at random
func (e *Estimator) Quote() string {
	return Quotes[e.source.IntN(len(Quotes))]
}

// roundTenth rounds to one decimal place, halves away from zero
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
