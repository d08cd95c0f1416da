package net


import (
	"testing"
	"time"

	"go.uber.org/goleak"
)


// ----------------------------------------------------------------------------


type codecTestPayload struct {
	Value uint64
	Label string
}


// ----------------------------------------------------------------------------


func TestRawCodec(t *testing.T) {
	var codec Codec[Bytes] = NewRawCodec()
	var msg Bytes = BytesOfText("ping")
	var data Bytes
	var err error

	data, err = codec.Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	msg, err = codec.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if msg.Text() != "ping" {
		t.Errorf("unexpected payload: %q", msg)
	}
}

func TestTextCodec(t *testing.T) {
	var codec Codec[string] = NewTextCodec()
	var data Bytes
	var text string
	var err error

	data, err = codec.Encode("héllo")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	text, err = codec.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if text != "héllo" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestGobCodec(t *testing.T) {
	var codec Codec[codecTestPayload] = NewGobCodec[codecTestPayload]()
	var msg codecTestPayload
	var data Bytes
	var err error

	data, err = codec.Encode(codecTestPayload{ 42, "answer" })
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	msg, err = codec.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if (msg.Value != 42) || (msg.Label != "answer") {
		t.Errorf("unexpected payload: %v", msg)
	}
}

func TestGobCodecGarbage(t *testing.T) {
	var codec Codec[codecTestPayload] = NewGobCodec[codecTestPayload]()
	var err error

	_, err = codec.Decode(BytesOfText("not gob"))
	if err == nil {
		t.Errorf("decode should fail")
	}
}


func TestTypedRoundTrip(t *testing.T) {
	var codec Codec[codecTestPayload] = NewGobCodec[codecTestPayload]()
	var resultc chan codecTestPayload
	var typed Typed[codecTestPayload]
	var channel Channel
	var port int
	var err error

	defer goleak.VerifyNone(t)

	port = findTcpPort(t)

	channel = NewChannelWith(port, &ChannelOptions{
		Log: newCountLogger(),
	})
	typed = NewTyped[codecTestPayload](channel, codec)

	resultc = make(chan codecTestPayload, 1)

	go func () {
		var msg codecTestPayload

		msg, _ = typed.Recv()
		resultc <- msg
		close(resultc)
	}()

	err = typed.SendWith(codecTestPayload{ 7, "seven" }, port,
		&SendOptions{
			Attempts: 100,
			Delay: 10 * time.Millisecond,
		})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if (<-resultc).Value != 7 {
		t.Errorf("unexpected payload")
	}
}

func TestTypedHistory(t *testing.T) {
	var sent, received *History
	var sender, receiver Typed[string]
	var codec Codec[string] = NewTextCodec()
	var donec chan struct{}
	var port int
	var err error

	defer goleak.VerifyNone(t)

	port = findTcpPort(t)
	sent = NewHistory()
	received = NewHistory()

	sender = NewTyped[string](NewChannelWith(port, &ChannelOptions{
		Log: newCountLogger(),
		History: sent,
	}), codec)
	receiver = NewTyped[string](NewChannelWith(port, &ChannelOptions{
		Log: newCountLogger(),
		History: received,
	}), codec)

	donec = make(chan struct{})

	go func () {
		receiver.Recv()
		close(donec)
	}()

	err = sender.SendWith("ping", port, &SendOptions{
		Attempts: 100,
		Delay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	<-donec

	if sent.Len() != 1 {
		t.Errorf("unexpected sent history: %d", sent.Len())
	}

	if received.Len() != 1 {
		t.Errorf("unexpected received history: %d", received.Len())
	}

	if received.Messages()[0].Text() != "ping" {
		t.Errorf("unexpected payload: %v", received.Messages())
	}
}
