package sim

// Closed-form comparison values computable from the configuration alone.

// TheoreticalMeanSojourn returns Σ 1/μ_i, the sum of per-stage mean service times.
func TheoreticalMeanSojourn(cfg SimConfig) float64 {
	total := 0.0
	for _, st := range cfg.Stages {
		total += 1 / st.ServiceRate
	}
	return total
}

// TheoreticalMeanQueueLength applies Little's Law: λ · TheoreticalMeanSojourn.
func TheoreticalMeanQueueLength(cfg SimConfig) float64 {
	return cfg.ArrivalRate * TheoreticalMeanSojourn(cfg)
}

// Utilizations returns ρ_i = λ/μ_i for every stage.
func Utilizations(cfg SimConfig) []float64 {
	rho := make([]float64, len(cfg.Stages))
	for i, st := range cfg.Stages {
		rho[i] = cfg.ArrivalRate / st.ServiceRate
	}
	return rho
}

// IsStable reports whether every stage has ρ_i < 1.
func IsStable(cfg SimConfig) bool {
	for _, r := range Utilizations(cfg) {
		if r >= 1 {
			return false
		}
	}
	return true
}

// JacksonMeanSojourn returns Σ 1/(μ_i − λ), the equilibrium mean sojourn of a
// tandem of independent M/M/1 stations. ok is false if any stage is unstable.
func JacksonMeanSojourn(cfg SimConfig) (w float64, ok bool) {
	if !IsStable(cfg) {
		return 0, false
	}
	for _, st := range cfg.Stages {
		w += 1 / (st.ServiceRate - cfg.ArrivalRate)
	}
	return w, true
}

// JacksonMeanJobsInSystem returns Σ ρ_i/(1−ρ_i). ok is false if any stage is unstable.
func JacksonMeanJobsInSystem(cfg SimConfig) (l float64, ok bool) {
	if !IsStable(cfg) {
		return 0, false
	}
	for _, r := range Utilizations(cfg) {
		l += r / (1 - r)
	}
	return l, true
}
