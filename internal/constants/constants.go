// Package constants provides named constants used throughout the
// specsim codebase. This centralizes magic numbers for better
// maintainability and documentation.
package constants

// Sampler defaults, matching the conventions of reactive nested
// samplers (live-point count, termination fraction, checkpoint layout).
const (
	// DefaultLivePoints is the default number of live points.
	DefaultLivePoints = 200

	// DefaultFracRemain is the default remaining-evidence fraction at
	// which a run terminates. Must lie in (0, 1].
	DefaultFracRemain = 0.5

	// DefaultResumeMode is the default checkpoint-resume policy
	// forwarded to engines that log to disk.
	DefaultResumeMode = "subfolder"

	// DefaultNSteps is the default number of steps for engines running
	// a slice/step sampler.
	DefaultNSteps = 20
)

// Effective-area parametrization constants. The parametric effective
// area is g1 * x^(-g2) * exp(-g3/x) with x the true energy in MeV,
// tuned to a large ground-based Cherenkov array.
const (
	// AeffG1 is the normalization in cm^2.
	AeffG1 = 6.85e9

	// AeffG2 is the spectral slope of the parametrization.
	AeffG2 = 0.0891

	// AeffG3 is the low-energy cutoff scale in MeV.
	AeffG3 = 5.0e5

	// MeVPerTeV converts energies from TeV to MeV for the
	// parametrization above.
	MeVPerTeV = 1.0e6
)

// Storage constants.
const (
	// DataDirName is the per-project directory holding the run
	// database, exports and trace logs.
	DataDirName = ".specsim"

	// DatabaseFileName is the SQLite database file inside DataDirName.
	DatabaseFileName = "specsim.db"
)
