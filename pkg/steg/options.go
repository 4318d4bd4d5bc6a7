package steg

// CapacityPolicy decides what Encode does with a message that has more bits than the image has carrier channels
type CapacityPolicy int

const (
	// CapacityTruncate drops the bits that do not fit. Decoding then yields a truncated message
	CapacityTruncate CapacityPolicy = iota
	// CapacityFailFast rejects the message with a CapacityExceededError
	CapacityFailFast
)

func (p CapacityPolicy) String() string {
	switch p {
	case CapacityTruncate:
		return "truncate"
	case CapacityFailFast:
		return "fail"
	default:
		return "unknown"
	}
}

type Option func(*encodeOptions)

type encodeOptions struct {
	capacityPolicy CapacityPolicy
}

func WithCapacityPolicy(policy CapacityPolicy) Option {
	return func(o *encodeOptions) {
		o.capacityPolicy = policy
	}
}

func newEncodeOptions(opts []Option) encodeOptions {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
