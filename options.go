// Copyright 2025 Oxide Package Manager Contributors
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

package solver

import "go.uber.org/zap"

// SolverOptions configures Solve. There is no file or environment config at
// this layer — the core is a library, not a service — so these are the
// entire surface.
type SolverOptions struct {
	// Logger receives Debug records describing candidates tried and
	// backtracks taken. Defaults to a no-op logger.
	Logger *zap.Logger

	// MaxSteps bounds the number of search recursion steps, guarding
	// against pathological inputs. 0 disables the limit.
	MaxSteps int

	// CheapProbe, when true, commits to the single best candidate at each
	// step without backtracking — a fast feasibility probe, not the normal
	// solving mode.
	CheapProbe bool
}

// SolverOption configures a SolverOptions value.
type SolverOption func(*SolverOptions)

const defaultMaxSteps = 100000

func defaultSolverOptions() SolverOptions {
	return SolverOptions{
		Logger:   zap.NewNop(),
		MaxSteps: defaultMaxSteps,
	}
}

// WithLogger sets the structured logger used for solver diagnostics.
func WithLogger(logger *zap.Logger) SolverOption {
	return func(o *SolverOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMaxSteps sets the maximum number of search recursion steps. A
// non-positive value disables the limit.
func WithMaxSteps(steps int) SolverOption {
	return func(o *SolverOptions) {
		if steps <= 0 {
			o.MaxSteps = 0
		} else {
			o.MaxSteps = steps
		}
	}
}

// WithCheapProbe enables or disables cheap-probe mode.
func WithCheapProbe(enabled bool) SolverOption {
	return func(o *SolverOptions) {
		o.CheapProbe = enabled
	}
}
