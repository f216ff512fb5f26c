package printo

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is the interface pkg/errors attaches to wrapped errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// GracefulOption tunes how Graceful reports a failure.
type GracefulOption func(*gracefulConfig)

type gracefulConfig struct {
	onError func(error)
	extra   string
}

// OnError registers a callback invoked after the traceback is rendered,
// before the failure propagates. Useful for cleanup or metrics.
func OnError(cb func(error)) GracefulOption {
	return func(c *gracefulConfig) {
		c.onError = cb
	}
}

// ExtraMessage adds context to the rule lines framing the traceback, for
// example the rank of the process in a distributed run.
func ExtraMessage(msg string) GracefulOption {
	return func(c *gracefulConfig) {
		c.extra = msg
	}
}

// Graceful runs fn and, when it fails, renders a readable traceback to the
// Logger's error stream before letting the failure continue on its way.
// A returned error is rendered and returned unchanged; a panic is rendered
// and re-raised with the same value. Graceful never swallows a failure:
// if the traceback renderer itself breaks, the raw error and stack are
// written instead.
//
// Example:
//
//	err := logger.Graceful(func() error {
//		return trainEpoch(ds)
//	})
func (l *Logger) Graceful(fn func() error, opts ...GracefulOption) (err error) {
	cfg := &gracefulConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	defer func() {
		if r := recover(); r != nil {
			l.renderTraceback(cfg, errors.Errorf("panic: %v", r), debug.Stack())
			panic(r)
		}
	}()
	err = fn()
	if err != nil {
		l.renderTraceback(cfg, err, nil)
	}
	return err
}

// GracefulFunc wraps a callable with Graceful's interception semantics,
// for use at call sites that want a decorated function value.
func (l *Logger) GracefulFunc(fn func() error, opts ...GracefulOption) func() error {
	return func() error {
		return l.Graceful(fn, opts...)
	}
}

// Graceful runs fn with traceback rendering on the Default logger.
func Graceful(fn func() error, opts ...GracefulOption) error {
	return Default.Graceful(fn, opts...)
}

// GracefulFunc wraps fn with traceback rendering on the Default logger.
func GracefulFunc(fn func() error, opts ...GracefulOption) func() error {
	return Default.GracefulFunc(fn, opts...)
}

// renderTraceback writes the framed traceback for err to the error stream.
// rawStack carries the recover-time stack for panics. Rendering failures
// fall back to an unstyled dump; the original failure always survives.
func (l *Logger) renderTraceback(cfg *gracefulConfig, err error, rawStack []byte) {
	defer func() {
		if recover() != nil {
			fmt.Fprintf(l.errOut, "%+v\n", err)
			if len(rawStack) > 0 {
				_, _ = l.errOut.Write(rawStack)
			}
		}
		if cfg.onError != nil {
			cfg.onError(err)
		}
	}()

	title := err.Error()
	if cfg.extra != "" {
		title += " | " + cfg.extra
	}
	rule := strings.Repeat("─", 8)

	var b strings.Builder
	b.WriteString(l.errPal.alert.Render(rule+" ↓ "+title+" ↓ "+rule) + "\n")
	if lines := frameLines(err); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n") + "\n")
	} else if len(rawStack) > 0 {
		b.Write(rawStack)
	} else {
		b.WriteString("  " + title + "\n")
	}
	b.WriteString(l.errPal.alert.Render(rule+" ↑ "+title+" ↑ "+rule) + "\n")
	_ = l.write(l.errOut, b.String())
}

// frameLines renders the pkg/errors stack attached to err, if any,
// dropping runtime, testing and facade frames for readability.
func frameLines(err error) []string {
	var st stackTracer
	for e := err; e != nil; {
		if s, ok := e.(stackTracer); ok {
			st = s
			break
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	if st == nil {
		return nil
	}

	trace := st.StackTrace()
	lines := make([]string, 0, len(trace))
	for _, f := range trace {
		name, file, _ := strings.Cut(fmt.Sprintf("%+s", f), "\n\t")
		if strings.HasPrefix(name, "runtime.") || strings.HasPrefix(name, "testing.") {
			continue
		}
		if strings.HasPrefix(name, modulePath+".") && !strings.HasSuffix(file, "_test.go") {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s\n    %s:%d", name, file, f))
	}
	return lines
}
