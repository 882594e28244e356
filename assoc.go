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

package assoc

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/builder"
	"dirpx.dev/assoc/config"
	"dirpx.dev/assoc/kinds"
	"dirpx.dev/assoc/logging"
	"dirpx.dev/assoc/registry"
)

// init installs the default state.
func init() {
	s := &state{
		cfg: config.DefaultConfig(),
		log: zap.NewNop(),
		reg: registry.New(),
		cat: registry.NewCatalog(),
	}
	s.bld = newBuilder(s)
	st.Store(s)
}

// Register adds ext to the global extension registry. It affects every
// association declared afterwards.
func Register(ext apis.Extension) error {
	return st.Load().reg.Register(ext)
}

// Define declares association name of kind on owner using the global builder.
func Define(kind apis.Kind, owner apis.Model, name string, opts apis.Options) (apis.Reflection, error) {
	return st.Load().bld.Build(kind, owner, name, opts)
}

// DefineScoped is Define with a scope stored on the reflection.
func DefineScoped(kind apis.Kind, owner apis.Model, name string, scope any, opts apis.Options) (apis.Reflection, error) {
	return st.Load().bld.BuildScoped(kind, owner, name, scope, opts)
}

// EmbedsOne declares a single embedded target.
func EmbedsOne(owner apis.Model, name string, opts apis.Options) (apis.Reflection, error) {
	return Define(kinds.EmbedsOne{}, owner, name, opts)
}

// EmbedsMany declares a collection of embedded targets.
func EmbedsMany(owner apis.Model, name string, opts apis.Options) (apis.Reflection, error) {
	return Define(kinds.EmbedsMany{}, owner, name, opts)
}

// EmbeddedIn declares the parent an embedded owner lives in.
func EmbeddedIn(owner apis.Model, name string, opts apis.Options) (apis.Reflection, error) {
	return Define(kinds.EmbeddedIn{}, owner, name, opts)
}

// Reflect returns the reflection of association name on owner.
func Reflect(owner apis.Model, name string) (apis.Reflection, bool) {
	return st.Load().cat.Lookup(owner, name)
}

// Reflections returns owner's reflections in declaration order.
func Reflections(owner apis.Model) []apis.Reflection {
	return st.Load().cat.For(owner)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the builder
// unless a builder was pinned with SetBuilder.
func SetConfig(cfg apis.Config) {
	SetAll(&cfg, nil, nil, nil, nil)
}

// LoadConfig reads the configuration at path (see config.Load), builds a
// logger from it and installs both.
func LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg)
	if err != nil {
		return err
	}
	SetAll(&cfg, log, nil, nil, nil)
	return nil
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger replaces the global logger. A nil logger disables logging.
func SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	SetAll(nil, log, nil, nil, nil)
}

// Registry returns the global extension registry.
func Registry() apis.ExtensionRegistry {
	return st.Load().reg
}

// Catalog returns the global reflection catalog.
func Catalog() apis.Catalog {
	return st.Load().cat
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder pins b as the global builder; later configuration changes no
// longer rebuild it. A nil b unpins and rebuilds the default builder.
func SetBuilder(b apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, log: old.log, reg: old.reg, cat: old.cat, bld: b, pbld: b != nil}
	if b == nil {
		next.bld = newBuilder(next)
	}
	st.Store(next)
}

// SetAll replaces global state components. Nil arguments leave the
// corresponding component unchanged. The builder is rebuilt from the new
// components unless bld is given or one is pinned.
func SetAll(cfg *apis.Config, log *zap.Logger, reg apis.ExtensionRegistry, cat apis.Catalog, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, log: old.log, reg: old.reg, cat: old.cat, bld: old.bld, pbld: old.pbld}
	if cfg != nil {
		next.cfg = *cfg
	}
	if log != nil {
		next.log = log
	}
	if reg != nil {
		next.reg = reg
	}
	if cat != nil {
		next.cat = cat
	}
	switch {
	case bld != nil:
		next.bld, next.pbld = bld, true
	case !next.pbld:
		next.bld = newBuilder(next)
	}
	st.Store(next)
}

// IsBuilderPinned reports whether the global builder was set explicitly.
func IsBuilderPinned() bool {
	return st.Load().pbld
}

// newBuilder builds the default builder over s.
func newBuilder(s *state) apis.Builder {
	return builder.New(s.reg,
		builder.WithConfig(s.cfg),
		builder.WithLogger(s.log),
		builder.WithCatalog(s.cat),
	)
}

// buildMu serializes writers of st.
var buildMu sync.Mutex

// st holds the current immutable state.
var st atomic.Pointer[state]

// state is the process-wide snapshot. It is never mutated after Store.
type state struct {
	// cfg is the builder configuration.
	cfg apis.Config
	// log receives builder logs.
	log *zap.Logger
	// reg holds the registered extensions.
	reg apis.ExtensionRegistry
	// cat records declared reflections.
	cat apis.Catalog
	// bld declares associations.
	bld apis.Builder
	// pbld marks bld as set explicitly.
	pbld bool
}
