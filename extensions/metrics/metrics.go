/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics counts association declarations with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/assoc/apis"
)

// Extension increments assoc_declarations_total for every declaration.
type Extension struct {
	declarations *prometheus.CounterVec
}

// Ensure Extension implements apis.Extension.
var _ apis.Extension = (*Extension)(nil)

// New registers the declaration counter with reg and returns the
// extension. A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Extension {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Extension{
		declarations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "assoc",
			Name:      "declarations_total",
			Help:      "Total number of association declarations by owner and macro.",
		}, []string{"owner", "macro"}),
	}
}

// ValidOptions returns no keys.
func (*Extension) ValidOptions() []string { return nil }

// Build counts the declaration. Declarations rolled back by a later step
// stay counted.
func (e *Extension) Build(owner apis.Model, r apis.Reflection) error {
	e.declarations.WithLabelValues(owner.Name(), r.Macro().String()).Inc()
	return nil
}

// Declarations returns the underlying counter.
func (e *Extension) Declarations() *prometheus.CounterVec { return e.declarations }
