package net


import (
	"fmt"
	"io"
	"net"
)


// ----------------------------------------------------------------------------


func (this *tcpChannel) Recv() (Bytes, error) {
	return this.RecvPort(0)
}

func (this *tcpChannel) RecvText() (string, error) {
	return this.RecvTextPort(0)
}

func (this *tcpChannel) RecvTextPort(port int) (string, error) {
	var data Bytes
	var err error

	data, err = this.RecvPort(port)

	return data.Text(), err
}

func (this *tcpChannel) RecvPort(port int) (Bytes, error) {
	var listener net.Listener
	var buffer []byte
	var conn net.Conn
	var data Bytes
	var length int
	var err error

	if validPort(port) == false {
		port = this.port
	}

	listener, err = net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}

	defer listener.Close()

	conn, err = listener.Accept()
	if err != nil {
		return nil, err
	}

	defer conn.Close()

	buffer = make([]byte, MaxMessageSize)

	length, err = conn.Read(buffer)

	data = make(Bytes, length)
	copy(data, buffer[:length])

	if err == io.EOF {
		if length == 0 {
			// Connection closed cleanly by peer.
			return data, io.EOF
		}

		// The peer closed right after delivering the payload.
		err = nil
	}

	if err != nil {
		this.log.Warn("recv on port %d failed: %s", port, err.Error())
		return data, err
	}

	if this.history != nil {
		this.history.record(data)
	}

	return data, nil
}
