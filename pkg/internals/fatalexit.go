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

package internals

import (
	ex "github.com/gpertea/mblasm/pkg/common"
	"go.uber.org/zap"
)

// FatalExit logs err via the given logger and terminates the process with
// err's exit code, running any registered shutdown hooks first.
//
// This is the single place in the program that turns an error value into a
// process exit: every fatal error path (bad argument, I/O failure,
// malformed line) funnels through here instead of calling os.Exit directly.
func FatalExit(logger *zap.Logger, err error) {
	if err == nil {
		return
	}
	code := 1
	if ce, ok := err.(ex.Error); ok {
		ce.Log(logger)
		code = ce.ExitCode
	} else {
		logger.Error(err.Error())
	}
	Exit(code)
}
