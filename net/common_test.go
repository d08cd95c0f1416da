package net


import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	sio "sling/io"
)


// ----------------------------------------------------------------------------


const BASE_TIMEOUT = 1000 * time.Millisecond


func listenTcpPort(t *testing.T) (int, net.Listener) {
	var fields []string
	var l net.Listener
	var port64 uint64
	var port string
	var err error

	l, err = net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
		return 0, nil
	}

	fields = strings.Split(l.Addr().String(), ":")

	port = fields[len(fields) - 1]
	port64, err = strconv.ParseUint(port, 10, 16)
	if err != nil {
		l.Close()
		t.Fatalf("listen: %v", err)
		return 0, nil
	}

	return int(port64), l
}

func findTcpPort(t *testing.T) int {
	var l net.Listener
	var port int

	port, l = listenTcpPort(t)
	l.Close()

	return port
}

func findUnresolvableHost(t *testing.T) string {
	// Completely empiric!
	// Probably does not work on many setups
	return "host.invalid"
}


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


// Dial until the remote listener is up.
//
func dialRetry(t *testing.T, port int) net.Conn {
	var deadline time.Time = time.Now().Add(10 * BASE_TIMEOUT)
	var conn net.Conn
	var err error

	for time.Now().Before(deadline) {
		conn, err = net.Dial("tcp", fmt.Sprintf("localhost:%d",port))
		if err == nil {
			return conn
		}

		time.Sleep(time.Millisecond)
	}

	t.Fatalf("dial: %v", err)

	return nil
}


type recvResult struct {
	data Bytes
	err error
}

func recvAsync(channel Channel, port int) <-chan recvResult {
	var resultc chan recvResult = make(chan recvResult, 1)

	go func () {
		var data Bytes
		var err error

		data, err = channel.RecvPort(port)
		resultc <- recvResult{ data, err }
		close(resultc)
	}()

	return resultc
}


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


type countLogger struct {
	lock sync.Mutex
	errors int
	warns int
}

func newCountLogger() *countLogger {
	return &countLogger{}
}

func (this *countLogger) Error(fstr string, args ...interface{}) {
	this.lock.Lock()
	this.errors += 1
	this.lock.Unlock()
}

func (this *countLogger) Warn(fstr string, args ...interface{}) {
	this.lock.Lock()
	this.warns += 1
	this.lock.Unlock()
}

func (this *countLogger) Info(fstr string, args ...interface{}) {
}

func (this *countLogger) Debug(fstr string, args ...interface{}) {
}

func (this *countLogger) Trace(fstr string, args ...interface{}) {
}

func (this *countLogger) WithContext(string, ...interface{}) sio.Logger {
	return this
}

func (this *countLogger) countWarns() int {
	this.lock.Lock()
	defer this.lock.Unlock()
	return this.warns
}

func (this *countLogger) countErrors() int {
	this.lock.Lock()
	defer this.lock.Unlock()
	return this.errors
}
