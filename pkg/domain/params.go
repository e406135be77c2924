package domain

// Params holds the four stochastic rates of the model. All are probabilities
// in [0, 1], fixed at construction time.
type Params struct {
	// Infect is the probability that a susceptible cell with at least one
	// exposed neighbor turns latent in a step.
	Infect float64
	// Symptom is the probability that a latent cell turns infected in a step.
	Symptom float64
	// Recover is the probability that an infected cell recovers in a step.
	Recover float64
	// Move is the fraction of cells involved in position exchange per step.
	Move float64
}

// Validate checks every rate and aggregates all failures, so a caller sees
// the full list of misconfigured fields at once rather than one at a time.
func (p Params) Validate() error {
	var errs []error
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"infect", p.Infect},
		{"symptom", p.Symptom},
		{"recover", p.Recover},
		{"move", p.Move},
	} {
		if f.value < 0 || f.value > 1 {
			errs = append(errs, &ParamError{Name: f.name, Value: f.value, Reason: "must be in [0, 1]"})
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
