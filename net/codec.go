package net


import (
	"bytes"
	"encoding/gob"
)


// ----------------------------------------------------------------------------


// Translate typed payloads from and to raw `Bytes`.
//
type Codec[T any] interface {
	Encode(msg T) (Bytes, error)

	Decode(data Bytes) (T, error)
}


// A `Channel` view exchanging typed payloads instead of raw `Bytes`.
//
// A `Typed` delegates to an underlying `Channel`: retry, one-shot receive
// and `History` semantics are the ones of the wrapped `Channel`, applied to
// the encoded payload.
//
type Typed[T any] interface {
	Send(msg T, port int) error

	SendWith(msg T, port int, opts *SendOptions) error

	Recv() (T, error)

	RecvPort(port int) (T, error)
}


func NewTyped[T any](inner Channel, codec Codec[T]) Typed[T] {
	return &typedChannel[T]{ inner, codec }
}


// The identity codec, making `Typed[Bytes]` behave exactly as the wrapped
// `Channel`.
//
func NewRawCodec() Codec[Bytes] {
	return &rawCodec{}
}

// Byte-for-byte reinterpretation of text payloads.
//
func NewTextCodec() Codec[string] {
	return &textCodec{}
}

// Gob serialization of arbitrary payload types.
// Encoded payloads must fit in `MaxMessageSize` bytes to survive a receive
// operation.
//
func NewGobCodec[T any]() Codec[T] {
	return &gobCodec[T]{}
}


// ----------------------------------------------------------------------------


type typedChannel[T any] struct {
	inner Channel
	codec Codec[T]
}

func (this *typedChannel[T]) Send(msg T, port int) error {
	return this.SendWith(msg, port, nil)
}

func (this *typedChannel[T]) SendWith(msg T, port int, opts *SendOptions) error {
	var data Bytes
	var err error

	data, err = this.codec.Encode(msg)
	if err != nil {
		return err
	}

	return this.inner.SendWith(data, port, opts)
}

func (this *typedChannel[T]) Recv() (T, error) {
	return this.RecvPort(0)
}

func (this *typedChannel[T]) RecvPort(port int) (T, error) {
	var zero T
	var data Bytes
	var err error

	data, err = this.inner.RecvPort(port)
	if err != nil {
		return zero, err
	}

	return this.codec.Decode(data)
}


type rawCodec struct {
}

func (this *rawCodec) Encode(msg Bytes) (Bytes, error) {
	return msg, nil
}

func (this *rawCodec) Decode(data Bytes) (Bytes, error) {
	return data, nil
}


type textCodec struct {
}

func (this *textCodec) Encode(msg string) (Bytes, error) {
	return BytesOfText(msg), nil
}

func (this *textCodec) Decode(data Bytes) (string, error) {
	return data.Text(), nil
}


type gobCodec[T any] struct {
}

func (this *gobCodec[T]) Encode(msg T) (Bytes, error) {
	var buf bytes.Buffer
	var err error

	err = gob.NewEncoder(&buf).Encode(&msg)
	if err != nil {
		return nil, err
	}

	return Bytes(buf.Bytes()), nil
}

func (this *gobCodec[T]) Decode(data Bytes) (T, error) {
	var msg T
	var err error

	err = gob.NewDecoder(bytes.NewReader(data)).Decode(&msg)

	return msg, err
}
