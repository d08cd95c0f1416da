package net


// ----------------------------------------------------------------------------


// An append-only record of the payloads successfully exchanged by a
// `Channel`.
//
// A `History` grows by one entry for each send or receive that completes
// without error. It is meant for inspection and testing, not for protocol
// correctness.
//
// A `History` is not synchronized. If the `Channel` it is attached to is
// used from several goroutines then accesses to the `History` must be
// serialized by the caller.
//
type History struct {
	messages []Bytes
}


func NewHistory() *History {
	return &History{}
}


// Return the number of recorded payloads.
//
func (this *History) Len() int {
	return len(this.messages)
}

// Return the recorded payloads in exchange order.
// The returned slice is shared with this `History` and must not be
// modified.
//
func (this *History) Messages() []Bytes {
	return this.messages
}


func (this *History) record(msg Bytes) {
	var recorded Bytes = make(Bytes, len(msg))

	copy(recorded, msg)

	this.messages = append(this.messages, recorded)
}
