package analyzer

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// runOptions represent configuration for the typeglue analyzer.
type runOptions struct {
	// recoverable enables reporting of recoverable diagnostics.
	recoverable bool

	// generated enables checking of generated files.
	generated bool

	// disabled lists diagnostic codes that are not reported.
	disabled []diagnostic.Code
}

// defaultRunOptions returns the default options.
func defaultRunOptions() *runOptions {
	return &runOptions{recoverable: true}
}

func (r *runOptions) reports(d diagnostic.Diagnostic) bool {
	if d.Severity == diagnostic.SeverityRecoverable && !r.recoverable {
		return false
	}

	return !slices.Contains(r.disabled, d.Code)
}

// Option configures specific behavior of a [New] typeglue analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt != nil {
			as = append(as, opt.LogAttr())
		}
	}

	return slog.GroupValue(as...)
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRecoverable is an [Option] to configure whether recoverable
// diagnostics are reported.
func WithRecoverable(recoverable bool) Option { return recoverableOption{recoverable: recoverable} }

type recoverableOption struct{ recoverable bool }

func (o recoverableOption) apply(r *runOptions) {
	r.recoverable = o.recoverable
}

func (o recoverableOption) LogAttr() slog.Attr {
	return slog.Bool("recoverable", o.recoverable)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDisabled is an [Option] to suppress diagnostics by code, e.g.
// "malformed-annotation".
func WithDisabled(codes ...string) Option { return disabledOption{codes: codes} }

type disabledOption struct{ codes []string }

func (o disabledOption) apply(r *runOptions) {
	for _, c := range o.codes {
		r.disabled = append(r.disabled, diagnostic.Code(c))
	}
}

func (o disabledOption) LogAttr() slog.Attr {
	return slog.String("disabled", strings.Join(o.codes, ","))
}
