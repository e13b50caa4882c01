package arena

import (
	"github.com/blocklift/zfp/format"
	"github.com/blocklift/zfp/internal/options"
)

// config holds Save's tunable knobs, built from a list of Option values via
// the generic functional-options helper (internal/options).
type config struct {
	compression format.CompressionType
}

// Option configures Save. With no option, Save uses
// format.CompressionNone — compression is an explicit opt-in.
type Option = options.Option[*config]

// WithCompression selects the secondary whole-payload compression codec
// applied to a persisted arena's position/size/words payload.
//
// format.CompressionS2 favors encode speed over ratio; format.CompressionZstd
// favors ratio for cold storage/archival of arena snapshots.
func WithCompression(t format.CompressionType) Option {
	return options.NoError(func(c *config) { c.compression = t })
}

func newConfig(opts ...Option) (config, error) {
	c := &config{compression: format.CompressionNone}
	if err := options.Apply(c, opts...); err != nil {
		return config{}, err
	}
	return *c, nil
}
