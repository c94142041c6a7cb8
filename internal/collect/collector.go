// Package collect builds the per-category inventory reports. Every builder
// returns a formatted text block and never fails: data a host cannot supply
// degrades to a placeholder line, and external tools are optional.
package collect

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// Collector runs the per-category report builders. It is stateless across
// scans; each builder re-queries the host.
type Collector struct {
	run      Runner
	platform Platform

	cmdTimeout   time.Duration
	sampleWindow time.Duration

	log *logrus.Entry
}

// Options configures a Collector. Zero fields get defaults; Runner and
// Platform are swappable for tests.
type Options struct {
	Runner         Runner
	Platform       Platform
	CommandTimeout time.Duration
	SampleWindow   time.Duration
}

// New builds a Collector for the current host.
func New(opts Options) *Collector {
	if opts.Runner == nil {
		opts.Runner = NewRunner()
	}
	if opts.Platform == nil {
		opts.Platform = newPlatform()
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = 5 * time.Second
	}
	if opts.SampleWindow <= 0 {
		opts.SampleWindow = time.Second
	}

	return &Collector{
		run:          opts.Runner,
		platform:     opts.Platform,
		cmdTimeout:   opts.CommandTimeout,
		sampleWindow: opts.SampleWindow,
		log:          logrus.WithField("component", "collector"),
	}
}

// Scan runs every category builder sequentially in slot-declaration order,
// handing each finished section to emit. Individual categories cannot fail;
// only a programming error escapes, as a panic, for the caller to surface.
func (c *Collector) Scan(ctx context.Context, emit func(report.Section)) {
	started := time.Now()

	builders := []struct {
		category report.Category
		build    func(context.Context) string
	}{
		{report.Summary, func(ctx context.Context) string { return c.SummaryReport(ctx, started) }},
		{report.AllComponents, c.ComponentsOverview},
		{report.CPU, c.CPUReport},
		{report.Memory, c.MemoryReport},
		{report.GPU, c.GPUReport},
		{report.Storage, c.StorageReport},
		{report.Motherboard, c.MotherboardReport},
		{report.Network, c.NetworkReport},
		{report.OS, c.OSReport},
	}

	for _, b := range builders {
		sectionStart := time.Now()
		text := b.build(ctx)
		c.log.WithFields(logrus.Fields{
			"category": b.category,
			"took":     time.Since(sectionStart).Round(time.Millisecond),
		}).Debug("category collected")
		emit(report.Section{Category: b.category, Text: text})
	}

	c.log.WithField("took", time.Since(started).Round(time.Millisecond)).Debug("scan finished")
}
