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

package config

import (
	"strconv"
	"strings"

	ex "github.com/gpertea/mblasm/pkg/common"
	"github.com/gpertea/mblasm/pkg/filter"
	"go.uber.org/zap"
)

// flagsWithArgs are the dash-flags that consume the following token as
// their argument.
var flagsWithArgs = map[string]bool{
	"-o": true, "-f": true, "-x": true, "-s": true, "-r": true, "-c": true,
}

// Parse decodes args (conventionally os.Args[1:]) into a Config. The
// grammar mixes short dash-flags, bare KEY=value tokens, and at most one
// trailing positional input path, a shape that doesn't fit flag/pflag/cobra
// and is hand-rolled instead.
func Parse(args []string, logger *zap.SugaredLogger) (*Config, error) {
	cfg := &Config{
		WithHeader: true,
		Thresholds: filter.DefaultThresholds(),
		Logger:     logger,
	}

	var numericFlagSeen bool
	var positionalSeen bool

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-H":
			cfg.WithHeader = false
		case arg == "-t":
			cfg.ForceTabulated = true
		case flagsWithArgs[arg]:
			i++
			if i >= len(args) {
				return nil, ex.NewArgumentError(arg+": missing argument", nil)
			}
			val := args[i]
			switch arg {
			case "-o":
				cfg.OutputPath = val
			case "-f":
				cfg.FilteredHitsPath = val
			case "-x":
				cfg.ExcludePath = val
			case "-s":
				cfg.SeqOnlyPath = val
				cfg.Membership = filter.MembershipSeqOnly
			case "-r":
				cfg.RestrictPath = val
				cfg.SeqOnlyPath = ""
				cfg.Membership = filter.MembershipRestrict
			case "-c":
				cfg.ClonePath = val
			}
		case strings.HasPrefix(arg, "-"):
			return nil, ex.NewArgumentError("unrecognized flag: "+arg, nil)
		case strings.Contains(arg, "="):
			activated, err := applyKeyValue(cfg, arg)
			if err != nil {
				return nil, err
			}
			if activated {
				numericFlagSeen = true
			}
		default:
			if positionalSeen {
				return nil, ex.NewArgumentError("more than one positional input path given: "+arg, nil)
			}
			cfg.InputPath = arg
			positionalSeen = true
		}
	}

	cfg.resolveRegime(numericFlagSeen)
	return cfg, nil
}

// applyKeyValue handles one bare KEY=value token, returning whether it was
// a numeric threshold (which implicitly activates tabulated parsing).
func applyKeyValue(cfg *Config, token string) (bool, error) {
	key, val, _ := strings.Cut(token, "=")
	key = strings.ToUpper(key)

	if key == "SEQFLT" {
		mode, ok := filter.ParseSeqFilterMode(val)
		if !ok {
			return false, ex.NewArgumentError("unrecognized SEQFLT value: "+val, nil)
		}
		cfg.TypeFilter = mode
		return false, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return false, ex.NewArgumentError("unparseable numeric value for "+key+": "+val, err)
	}
	switch key {
	case "PID":
		cfg.Thresholds.MinPID = n
	case "SCOV":
		cfg.Thresholds.MinSCov = n
	case "LCOV":
		cfg.Thresholds.MinLCov = n
	case "OVL":
		cfg.Thresholds.MinOvl = n
	case "OVHANG":
		cfg.Thresholds.MaxOvhang = n
	case "SCORE":
		cfg.Thresholds.MinScore = n
	default:
		return false, ex.NewArgumentError("unrecognized key=value token: "+token, nil)
	}
	return true, nil
}
