// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "github.com/sirupsen/logrus"

// DiagnosticSink receives the splitter's optional verbose output, gated
// by Options.Verbose. Callers who don't want logging can set
// Options.Logger to nil; the default is a logrus-backed sink matching
// the rest of this module's ambient stack.
type DiagnosticSink interface {
	// SplitPoint is called once per accepted block split, grounded on
	// original_source/src/zopfli/blocksplitter.c's PrintBlockSplitPoints:
	// it reports the split position both in LZ77-symbol-index space and
	// in input-byte space.
	SplitPoint(symbolIndex, bytePos int)
}

// logrusSink is the default DiagnosticSink, logging through the
// package-level logrus logger the way WoozyMasta-lzo's compress path logs
// through logrus (grounded on moby-moby/go.mod's sirupsen/logrus
// dependency, adopted here as the ambient logging library).
type logrusSink struct {
	log *logrus.Logger
}

// NewLogrusSink returns a DiagnosticSink that writes through logrus's
// package-level standard logger at Info level.
func NewLogrusSink() DiagnosticSink {
	return &logrusSink{log: logrus.StandardLogger()}
}

func (s *logrusSink) SplitPoint(symbolIndex, bytePos int) {
	if s == nil || s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"symbol": symbolIndex,
		"byte":   bytePos,
	}).Info("block split point")
}

// noopSink discards everything; used when Options.Logger is left nil.
type noopSink struct{}

func (noopSink) SplitPoint(int, int) {}

// sinkOrNoop returns s if non-nil, otherwise a noopSink, so call sites
// never need a nil check.
func sinkOrNoop(s DiagnosticSink) DiagnosticSink {
	if s == nil {
		return noopSink{}
	}
	return s
}
