package validation

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithSequenceCheck toggles the match-number check.
func WithSequenceCheck(enabled bool) Option {
	return func(v *Validator) { v.sequence = enabled }
}

// WithWinnerCheck toggles the winner-validity check.
func WithWinnerCheck(enabled bool) Option {
	return func(v *Validator) { v.winners = enabled }
}

// WithDateOrderCheck toggles the non-decreasing date check.
func WithDateOrderCheck(enabled bool) Option {
	return func(v *Validator) { v.dateOrder = enabled }
}
