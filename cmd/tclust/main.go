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

package main

import (
	"io"
	"os"

	"github.com/gpertea/mblasm/internal/config"
	ex "github.com/gpertea/mblasm/pkg/common"
	"github.com/gpertea/mblasm/pkg/internals"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Parse(os.Args[1:], logger.Sugar())
	if err != nil {
		internals.FatalExit(logger, err)
		return
	}

	io_, err := openSinks(cfg)
	if err != nil {
		internals.FatalExit(logger, err)
		return
	}

	counters, err := run(cfg, io_)
	if err != nil {
		internals.FatalExit(logger, err)
		return
	}

	for name, value := range counters.Snapshot() {
		logger.Sugar().Infow("run summary", "counter", name, "value", value)
	}
	internals.Exit(ex.ExitSuccess)
}

// openSinks resolves the input/output/filtered-hits sinks cfg names into
// concrete io.Reader/io.Writer values, defaulting to stdin/stdout, and
// registers an IdempotentCloser-backed shutdown hook so every opened
// handle is closed on every exit path.
func openSinks(cfg *config.Config) (sinks, error) {
	closer := internals.NewIdempotentCloser()
	var opened []io.Closer

	internals.AddShutdownHook("tclust-io", func() {
		closer.Close(func() {
			for _, c := range opened {
				c.Close()
			}
		}, nil)
	})

	var in io.Reader = os.Stdin
	if cfg.InputPath != "" {
		f, err := openRead(cfg.InputPath)
		if err != nil {
			return sinks{}, err
		}
		opened = append(opened, f)
		in = f
	}

	var out io.Writer = os.Stdout
	if cfg.OutputPath != "" {
		f, err := openWrite(cfg.OutputPath)
		if err != nil {
			return sinks{}, err
		}
		opened = append(opened, f)
		out = f
	}

	var filteredHits io.Writer
	switch cfg.FilteredHitsPath {
	case "":
		filteredHits = nil
	case "-":
		nc := nopCloser{os.Stdout}
		opened = append(opened, nc)
		filteredHits = nc
	default:
		f, err := openWrite(cfg.FilteredHitsPath)
		if err != nil {
			return sinks{}, err
		}
		opened = append(opened, f)
		filteredHits = f
	}

	return sinks{input: in, output: out, filteredHits: filteredHits}, nil
}
