package io


import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)


// ----------------------------------------------------------------------------


const (
	LOG_NONE  int = 0
	LOG_ERROR int = 1
	LOG_WARN  int = 2
	LOG_INFO  int = 3
	LOG_DEBUG int = 4
	LOG_TRACE int = 5
)

// A Logger object to selectively log information.
//
type Logger interface {
	// Log information likely to cause a fatal error.
	//
	Error(fstr string, args ...interface{})

	// Log information which is concerning but not (yet) causing a fatal
	// error.
	//
	Warn(fstr string, args ...interface{})

	// Log information which is not threatening the process stability but
	// is nevertheless noticeable.
	//
	Info(fstr string, args ...interface{})

	// Log information which is normally not important but can be useful
	// for debugging purpose.
	//
	Debug(fstr string, args ...interface{})

	// Log information which is only useful during development phase.
	//
	Trace(fstr string, args ...interface{})


	// Return a new `Logger` with the given `name` appended to its
	// context.
	// If additional `args` are supplied then `name` is a printf format
	// for these `args`.
	//
	WithContext(name string, args ...interface{}) Logger
}


func NewNopLogger() Logger {
	return newNopLogger()
}


func NewStderrLogger(level int) Logger {
	return newZerologLogger(os.Stderr, level, isTerminal(os.Stderr))
}

func NewFileLogger(file *os.File, level int) Logger {
	return newZerologLogger(file, level, isTerminal(file))
}

func NewWriterLogger(writer io.Writer, level int, color bool) Logger {
	return newZerologLogger(writer, level, color)
}


// ----------------------------------------------------------------------------


type nopLogger struct {
}

func newNopLogger() *nopLogger {
	return &nopLogger{}
}

func (this *nopLogger) Error(fstr string, args ...interface{}) {
}

func (this *nopLogger) Warn(fstr string, args ...interface{}) {
}

func (this *nopLogger) Info(fstr string, args ...interface{}) {
}

func (this *nopLogger) Debug(fstr string, args ...interface{}) {
}

func (this *nopLogger) Trace(fstr string, args ...interface{}) {
}

func (this *nopLogger) WithContext(string, ...interface{}) Logger {
	return this
}


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


type zerologLogger struct {
	inner zerolog.Logger
	level int
	context string
}

func isTerminal(file *os.File) bool {
	var fi os.FileInfo
	var err error

	fi, err = file.Stat()
	if err != nil {
		return false
	}

	return (fi.Mode() & os.ModeCharDevice) != 0
}

func newZerologLogger(writer io.Writer,level int,color bool) *zerologLogger {
	var this zerologLogger

	if color {
		writer = zerolog.ConsoleWriter{ Out: writer }
	}

	this.inner = zerolog.New(writer).With().Timestamp().Logger()
	this.level = level
	this.context = ""

	return &this
}

func (this *zerologLogger) log(ev *zerolog.Event, fstr string, args ...interface{}) {
	if len(this.context) > 0 {
		ev = ev.Str("context", this.context)
	}

	ev.Msgf(fstr, args...)
}

func (this *zerologLogger) Error(fstr string, args ...interface{}) {
	if this.level >= LOG_ERROR {
		this.log(this.inner.Error(), fstr, args...)
	}
}

func (this *zerologLogger) Warn(fstr string, args ...interface{}) {
	if this.level >= LOG_WARN {
		this.log(this.inner.Warn(), fstr, args...)
	}
}

func (this *zerologLogger) Info(fstr string, args ...interface{}) {
	if this.level >= LOG_INFO {
		this.log(this.inner.Info(), fstr, args...)
	}
}

func (this *zerologLogger) Debug(fstr string, args ...interface{}) {
	if this.level >= LOG_DEBUG {
		this.log(this.inner.Debug(), fstr, args...)
	}
}

func (this *zerologLogger) Trace(fstr string, args ...interface{}) {
	if this.level >= LOG_TRACE {
		this.log(this.inner.Trace(), fstr, args...)
	}
}

func (this *zerologLogger) WithContext(name string, args ...interface{}) Logger {
	var clogger zerologLogger

	if len(args) > 0 {
		name = fmt.Sprintf(name, args...)
	}

	clogger.inner = this.inner
	clogger.level = this.level

	if len(this.context) == 0 {
		clogger.context = name
	} else if len(name) == 0 {
		clogger.context = this.context
	} else {
		clogger.context = this.context + ":" + name
	}

	return &clogger
}
