package codec

// CodecBuilderOption is a functional option for configuring a Codec via NewCodec.
type CodecBuilderOption func(*codec)

// WithPrecision is an option builder that sets the number of significant
// digits written for each float in the OBJ text format. The default (-1)
// writes the shortest representation that parses back to the exact float32.
//
// Parameters:
//   - digits: the significant digit count, or -1 for shortest-exact
//
// Returns:
//   - CodecBuilderOption: a function that applies the precision option to a codec
func WithPrecision(digits int) CodecBuilderOption {
	return func(c *codec) {
		c.objPrecision = digits
	}
}

// WithWorkers is an option builder that sets the worker count used by
// DecodeFiles. Defaults to the number of logical CPUs.
//
// Parameters:
//   - workers: the number of concurrent decode workers
//
// Returns:
//   - CodecBuilderOption: a function that applies the workers option to a codec
func WithWorkers(workers int) CodecBuilderOption {
	return func(c *codec) {
		c.workers = workers
	}
}
