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
	"os"
	"sync"
)

// ExitProcedure is the function invoked by Exit/Halt once shutdown hooks
// have run. Tests swap this out to observe the requested status code
// instead of actually terminating the process.
type ExitProcedure func(statusCode int)

var (
	defaultExitProcedure ExitProcedure = os.Exit

	mu            sync.Mutex
	exitProcedure ExitProcedure = defaultExitProcedure
	haltProcedure ExitProcedure = defaultExitProcedure
	hooks         []namedHook
)

type namedHook struct {
	name string
	fn   func()
}

// AddShutdownHook registers a function to run, in registration order, the
// next time Exit or Halt is called. Used to guarantee open file handles
// (wrapped in an IdempotentCloser) are closed on every exit path, including
// a fatal error partway through the run.
func AddShutdownHook(name string, f func()) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, namedHook{name: name, fn: f})
}

// Exit runs all registered shutdown hooks in order, then terminates the
// process with statusCode.
func Exit(statusCode int) {
	mu.Lock()
	runHooksLocked()
	proc := exitProcedure
	mu.Unlock()
	proc(statusCode)
}

// Halt behaves like Exit but is reserved for abnormal termination paths
// that may want a distinct procedure under test.
func Halt(statusCode int) {
	mu.Lock()
	runHooksLocked()
	proc := haltProcedure
	mu.Unlock()
	proc(statusCode)
}

// runHooksLocked must be called with mu held.
func runHooksLocked() {
	for _, h := range hooks {
		func() {
			defer func() { recover() }()
			h.fn()
		}()
	}
	hooks = nil
}

// SetExitProcedure overrides the procedure invoked by Exit, for testing.
func SetExitProcedure(procedure ExitProcedure) {
	mu.Lock()
	defer mu.Unlock()
	if procedure == nil {
		procedure = defaultExitProcedure
	}
	exitProcedure = procedure
}

// SetHaltProcedure overrides the procedure invoked by Halt, for testing.
func SetHaltProcedure(procedure ExitProcedure) {
	mu.Lock()
	defer mu.Unlock()
	if procedure == nil {
		procedure = defaultExitProcedure
	}
	haltProcedure = procedure
}

// ResetForTest restores the default exit/halt procedures and clears any
// pending shutdown hooks. Intended for use between test cases.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	exitProcedure = defaultExitProcedure
	haltProcedure = defaultExitProcedure
	hooks = nil
}
