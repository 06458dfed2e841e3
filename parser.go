package zone

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Parser drives one zone file (and any files it $INCLUDEs) through the
// scanner and dispatcher and into a RecordHandler. A Parser is not
// safe for concurrent use by multiple goroutines; running several
// zones in parallel means constructing one Parser per goroutine.
type Parser struct {
	options Options
	ring    *bufferRing
	file    *file

	sessionID uuid.UUID
	log       *logrus.Entry

	// UserData is opaque caller state threaded through to every
	// RecordHandler/SourceOpener call via the Parser, matching the
	// void *user_data the original library passes through.
	UserData any
}

func newParser(opts Options, buffers Buffers, userData any) *Parser {
	p := &Parser{
		options:   opts,
		ring:      newBufferRing(&buffers),
		sessionID: uuid.New(),
		UserData:  userData,
	}

	categories := opts.Log.Categories
	write := opts.Log.Write
	if categories == 0 && write == nil {
		categories = LogError | LogWarning | LogInfo
		write = defaultLogSink
	}
	p.options.Log.Categories = categories
	p.options.Log.Write = write
	p.log = logrus.WithField("session", p.sessionID.String())

	return p
}

// SessionID identifies this Parser across its own log lines, so
// output from several Parser instances running in the same process
// (never the same Parser from two goroutines) can be told apart.
func (p *Parser) SessionID() string {
	return p.sessionID.String()
}

// File returns the name of the frame currently being read — the
// $INCLUDEd file at the top of the stack, or the original input once
// all includes have been exhausted.
func (p *Parser) File() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Line returns the current line number within File().
func (p *Parser) Line() int {
	if p.file == nil {
		return 0
	}
	return p.file.line
}

func defaultLogSink(p *Parser, file string, line int, function string, category LogCategory, message string) {
	entry := logrus.WithFields(logrus.Fields{
		"file":     file,
		"line":     line,
		"function": function,
	})
	if p != nil {
		entry = entry.WithField("session", p.sessionID.String())
	}
	switch category {
	case LogError:
		entry.Error(message)
	case LogWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

func (p *Parser) logf(category LogCategory, function, message string) {
	if p.options.Log.Categories&category == 0 || p.options.Log.Write == nil {
		return
	}
	p.options.Log.Write(p, p.File(), p.Line(), function, category, message)
}

func (p *Parser) fail(status Status, function, message string) *Error {
	err := newError(status, p.File(), p.Line(), function, message)
	p.logf(LogError, function, message)
	return err
}
