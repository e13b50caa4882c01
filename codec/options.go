package codec

// DriverOption configures a Driver at construction time, following the
// teacher's functional-options convention (see blob/numeric_encoder_config.go).
// Unlike internal/options' generic Option[T] (used where validation can
// fail), Driver construction has no invalid knob combination that can't be
// normalized in NewDriver itself, so options here are plain closures.
type DriverOption func(*Driver)

// WithFixedRate selects ModeFixedRate with the given per-block bit budget.
func WithFixedRate(bits int) DriverOption {
	return func(d *Driver) {
		d.mode = ModeFixedRate
		d.minbits = bits
		d.maxbits = bits
	}
}

// WithFixedPrecision selects ModeFixedPrecision, capping bit planes coded
// per block to maxprec while allowing maxbits as an upper bound on any
// single block's length.
func WithFixedPrecision(maxprec, maxbits int) DriverOption {
	return func(d *Driver) {
		d.mode = ModeFixedPrecision
		d.maxprec = maxprec
		d.maxbits = maxbits
	}
}

// WithFixedAccuracy selects ModeFixedAccuracy, additionally setting minexp
// as an absolute-magnitude accuracy floor.
func WithFixedAccuracy(minexp, maxbits int) DriverOption {
	return func(d *Driver) {
		d.mode = ModeFixedAccuracy
		d.minexp = minexp
		d.maxbits = maxbits
	}
}

// WithMaxBits caps any single block's emitted length regardless of mode.
func WithMaxBits(maxbits int) DriverOption {
	return func(d *Driver) { d.maxbits = maxbits }
}
