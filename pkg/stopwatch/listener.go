package stopwatch

// ChannelListener returns a Listener that forwards values to ch without blocking.
// When ch is full the value is dropped; readers should treat a received value as a
// signal to read Elapsed rather than as the only copy of the display.
func ChannelListener(ch chan<- ElapsedTime) Listener {
	return func(t ElapsedTime) {
		select {
		case ch <- t:
		default:
		}
	}
}
