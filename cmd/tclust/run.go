// Copyright 2024 Atomstate Technologies Private Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tclust partitions a stream of pairwise sequence-similarity hits
// into transitive-closure clusters, after an admissibility filter pipeline
// rejects weak or uninteresting hits.
package main

import (
	"bufio"
	"io"

	"github.com/gpertea/mblasm/internal/config"
	ex "github.com/gpertea/mblasm/pkg/common"
	"github.com/gpertea/mblasm/pkg/cluster"
	"github.com/gpertea/mblasm/pkg/emit"
	"github.com/gpertea/mblasm/pkg/filter"
	"github.com/gpertea/mblasm/pkg/hit"
	"github.com/gpertea/mblasm/pkg/seed"
	"github.com/gpertea/mblasm/pkg/seqid"
	"github.com/gpertea/mblasm/pkg/stats"
)

// sinks bundles the opened I/O handles a run needs, so run can stay
// agnostic of where they came from (files, stdio, or, in tests, in-memory
// buffers).
type sinks struct {
	input        io.Reader
	output       io.Writer
	filteredHits io.Writer // nil if -f was not given
}

// run drives one end-to-end pass: load seed/filter lists, stream input
// through the filter chain into the cluster registry, then emit.
// It returns the run's counters for diagnostic reporting.
func run(cfg *config.Config, io_ sinks) (*stats.Counters, error) {
	chain, err := buildChain(cfg)
	if err != nil {
		return nil, err
	}

	var clone io.Reader
	if cfg.ClonePath != "" {
		f, err := openRead(cfg.ClonePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		clone = f
	}

	return runPipeline(cfg, io_, chain, clone)
}

// runPipeline executes the pipeline against an already-assembled chain and
// an optional already-opened clone reader, independent of where either one
// came from. Kept separate from run so tests can supply a chain/clone
// directly instead of round-tripping through temp files.
func runPipeline(cfg *config.Config, io_ sinks, chain filter.Chain, clone io.Reader) (*stats.Counters, error) {
	interner := seqid.New()
	registry := cluster.New(interner, cfg.Logger)
	counters := &stats.Counters{}

	if cfg.Logger != nil {
		registry.SetObserver(func(survivor *cluster.Cluster, absorbed cluster.ID, newSize int) {
			cfg.Logger.Debugf("merged cluster %d into %d, new size %d", absorbed, survivor.ID(), newSize)
		})
	}

	if clone != nil {
		var restrict filter.Set
		if chain.Membership == filter.MembershipRestrict {
			restrict = chain.Restrict
		}
		if err := seed.LoadClone(clone, registry, restrict); err != nil {
			return nil, ex.NewIOError("failed reading clone file", err)
		}
	}

	if err := streamPairs(cfg, io_.input, io_.filteredHits, chain, registry, counters); err != nil {
		return nil, err
	}

	records := registry.Enumerate()
	largest := 0
	for _, r := range records {
		if len(r.Members) > largest {
			largest = len(r.Members)
		}
	}
	counters.SetClusterSummary(len(records), largest)

	w := emit.NewWriter(io_.output, emit.Formatter{WithHeader: cfg.WithHeader})
	if err := w.WriteAll(records); err != nil {
		return nil, ex.NewIOError("failed writing output", err)
	}
	if err := w.Flush(); err != nil {
		return nil, ex.NewIOError("failed flushing output", err)
	}

	return counters, nil
}

// buildChain loads the exclude/seq-only/restrict lists and assembles the
// filter.Chain described by cfg.
func buildChain(cfg *config.Config) (filter.Chain, error) {
	chain := filter.Chain{
		Membership: cfg.Membership,
		Type:       filter.TypeFilter{Mode: cfg.TypeFilter},
		Thresholds: cfg.Thresholds,
		Logger:     cfg.Logger,
	}

	load := func(path string) (filter.Set, error) {
		if path == "" {
			return nil, nil
		}
		f, err := openRead(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		set, err := seed.LoadList(f)
		if err != nil {
			return nil, ex.NewIOError("failed reading list file "+path, err)
		}
		return set, nil
	}

	var err error
	if chain.Exclude, err = load(cfg.ExcludePath); err != nil {
		return chain, err
	}
	if chain.SeqOnly, err = load(cfg.SeqOnlyPath); err != nil {
		return chain, err
	}
	if chain.Restrict, err = load(cfg.RestrictPath); err != nil {
		return chain, err
	}
	return chain, nil
}

// streamPairs reads input line by line, parses each per cfg.Regime,
// applies chain, and feeds surviving pairs into registry.
func streamPairs(cfg *config.Config, input io.Reader, filteredHits io.Writer, chain filter.Chain, registry *cluster.Registry, counters *stats.Counters) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		var pair hit.Pair
		var rec *hit.Record
		var skip bool
		var err error

		if cfg.Regime == config.Tabulated {
			rec, skip, err = hit.ParseTabulated(line)
			if err == nil && !skip {
				pair = rec.Pair()
			}
		} else {
			pair, skip, err = hit.ParsePair(line)
		}

		if err != nil {
			counters.IncMalformedLine()
			return ex.NewMalformedLineError("malformed input line", err)
		}
		if skip {
			continue
		}

		counters.IncPair()
		ok, reason := chain.Matches(pair, rec)
		if !ok {
			counters.IncDrop(reason)
			continue
		}

		if err := registry.AddPair(pair.A, pair.B); err != nil {
			return ex.NewMalformedLineError("failed adding pair to registry", err)
		}

		if filteredHits != nil {
			if _, err := io.WriteString(filteredHits, line+"\n"); err != nil {
				return ex.NewIOError("failed writing filtered-hits sink", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return ex.NewIOError("failed reading input", err)
	}
	return nil
}
