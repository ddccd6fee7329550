package core

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Pipeline orchestrates a single conversion:
// read input → detect format → look up converter → convert.
// It holds no per-request state and is safe for concurrent use once built.
type Pipeline struct {
	detector Detector
	registry *Registry
	log      *logrus.Logger
}

// NewPipeline creates a Pipeline. A nil logger disables pipeline logging.
func NewPipeline(d Detector, r *Registry, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Pipeline{detector: d, registry: r, log: log}
}

// Convert runs one request through the pipeline. Detection and lookup
// failures abort the request; there is no fallback or retry.
func (p *Pipeline) Convert(ctx context.Context, req Request) (*Result, error) {
	data := req.Data
	if data == nil {
		var err error
		data, err = os.ReadFile(req.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", req.Path, err)
		}
	}

	format := req.Format
	if format == "" {
		var err error
		format, err = p.detector.Detect(req.Path, data)
		if err != nil {
			return nil, err
		}
	}
	p.log.WithFields(logrus.Fields{"path": req.Path, "format": format}).Debug("format resolved")

	converter, err := p.registry.Lookup(format)
	if err != nil {
		return nil, err
	}

	markdown, err := converter.Convert(ctx, Source{Path: req.Path, Data: data})
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", req.Path, err)
	}
	if markdown == "" {
		p.log.WithField("path", req.Path).Warn("conversion produced empty output")
	}

	return &Result{Format: format, Markdown: markdown}, nil
}
