// Package tracker drives a batch of sensor packages through the workout calculator.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"example.com/fittracker/internal/source"
	"example.com/fittracker/internal/summary"
	"example.com/fittracker/internal/workout"
)

// Policy decides what happens to the batch when a record fails.
type Policy string

const (
	// PolicySkip logs the failed record and continues with the next one.
	PolicySkip Policy = "skip"
	// PolicyAbort stops the batch at the first failed record.
	PolicyAbort Policy = "abort"
)

// ErrUnknownPolicy is returned by ParsePolicy for unsupported values.
var ErrUnknownPolicy = errors.New("unknown error policy")

// ParsePolicy resolves a policy name; empty selects PolicySkip.
func ParsePolicy(value string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return PolicySkip, nil
	case PolicySkip, PolicyAbort:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report failed records.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithLocale sets the language of the rendered summaries.
func WithLocale(loc summary.Locale) Option {
	return func(p *Processor) {
		p.locale = loc
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(policy Policy) Option {
	return func(p *Processor) {
		p.policy = policy
	}
}

// WithRunID overrides the generated batch identifier.
func WithRunID(id string) Option {
	return func(p *Processor) {
		p.runID = id
	}
}

// Processor pulls packages from a Source, renders each one, and writes it to the sink.
// Records are handled strictly one after another in source order.
type Processor struct {
	source source.Source
	sink   io.Writer
	locale summary.Locale
	policy Policy
	runID  string
	logger *log.Logger
}

// NewProcessor constructs a Processor with the provided source and sink.
func NewProcessor(src source.Source, sink io.Writer, opts ...Option) *Processor {
	p := &Processor{
		source: src,
		sink:   sink,
		locale: summary.DefaultLocale,
		policy: PolicySkip,
		runID:  uuid.NewString(),
		logger: log.New(log.Writer(), "[tracker] ", log.LstdFlags|log.Lshortfile),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunID identifies the batch in logs and reports.
func (p *Processor) RunID() string {
	return p.runID
}

// Run processes packages until the source is exhausted, the context is cancelled,
// or a record fails under PolicyAbort. The report is valid in every case.
func (p *Processor) Run(ctx context.Context) (Report, error) {
	report := newReport(p.runID)

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		pkg, err := p.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return report, nil
		}
		if err != nil && !errors.Is(err, source.ErrMalformedRecord) {
			return report, err
		}

		var s summary.Summary
		var kind workout.Kind
		if err == nil {
			kind, s, err = p.evaluate(pkg)
		}
		if err != nil {
			report.Failed++
			recordFailed(pkg.Code, err)
			if p.policy == PolicyAbort {
				return report, fmt.Errorf("record %d (line %d): %w", index, pkg.Line, err)
			}
			p.logger.Printf("skipping record (run=%s, index=%d, line=%d, type=%q): %v", p.runID, index, pkg.Line, pkg.Code, err)
			continue
		}

		if _, err := io.WriteString(p.sink, s.Message(p.locale)+"\n"); err != nil {
			return report, fmt.Errorf("write summary: %w", err)
		}
		report.add(kind, s)
		recordProcessed(kind, s)
	}
}

func (p *Processor) evaluate(pkg source.Package) (workout.Kind, summary.Summary, error) {
	w, err := workout.ReadValues(pkg.Code, pkg.Data)
	if err != nil {
		return "", summary.Summary{}, err
	}
	s, err := summary.New(w)
	if err != nil {
		return "", summary.Summary{}, err
	}
	return w.Kind(), s, nil
}
