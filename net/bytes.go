package net


// ----------------------------------------------------------------------------


// A raw byte payload exchanged over a `Channel`.
//
// A `Bytes` has no embedded length prefix or delimiter: its extent is
// defined by a single write on the sending side and a single read on the
// receiving side.
//
type Bytes []byte


// Return the `Bytes` encoding the given `text`.
// This is a direct byte-for-byte reinterpretation, not an encoding.
//
func BytesOfText(text string) Bytes {
	return Bytes(text)
}


// Return this payload viewed as human readable text.
//
func (this Bytes) Text() string {
	return string(this)
}

func (this Bytes) String() string {
	return string(this)
}
