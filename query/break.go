package query

// StopIteration is the control flow panic raised by Stop. Every drain and every
// composed iterator recovers it and treats it as a normal end-of-sequence.
type StopIteration struct{}

// Stop ends the stream that is currently being pulled. It is intended for use inside
// producers handed to FromProducer that cannot otherwise signal their end mid-pull.
func Stop() {
	panic(&StopIteration{})
}

// stopIteration recovers a StopIteration panic. Any other panic propagates.
func stopIteration() {
	if err := recover(); err != nil {
		if _, ok := err.(*StopIteration); !ok {
			panic(err)
		}
	}
}
