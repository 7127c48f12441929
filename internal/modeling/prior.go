package modeling

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Prior is the inverse-CDF transform a nested sampler uses to map its
// unit cube onto parameter space. InverseCDF must accept p in [0, 1]
// and return the parameter value at that quantile.
type Prior interface {
	InverseCDF(p float64) float64
}

// UniformPrior is a flat prior on [Min, Max].
type UniformPrior struct {
	Min float64
	Max float64
}

// InverseCDF implements Prior.
func (u UniformPrior) InverseCDF(p float64) float64 {
	return u.Min + p*(u.Max-u.Min)
}

// LogUniformPrior is flat in log space on [Min, Max]. Suited to scale
// parameters such as flux amplitudes. Min and Max must be positive.
type LogUniformPrior struct {
	Min float64
	Max float64
}

// InverseCDF implements Prior.
func (u LogUniformPrior) InverseCDF(p float64) float64 {
	return u.Min * math.Pow(u.Max/u.Min, p)
}

// GaussianPrior is a normal prior with mean Mu and width Sigma.
type GaussianPrior struct {
	Mu    float64
	Sigma float64
}

// InverseCDF implements Prior.
func (g GaussianPrior) InverseCDF(p float64) float64 {
	return distuv.Normal{Mu: g.Mu, Sigma: g.Sigma}.Quantile(p)
}
