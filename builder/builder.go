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

// Package builder turns association declarations into reflections,
// generated accessors and extension state on the owner.
package builder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/assoc/accessor"
	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/config"
	"dirpx.dev/assoc/logging"
	"dirpx.dev/assoc/options"
	"dirpx.dev/assoc/reflection"
	"dirpx.dev/assoc/registry"
	"dirpx.dev/assoc/resolver"
)

var (
	// ErrNilKind is returned when Build is called without a kind.
	ErrNilKind = errors.New("assoc(builder): nil kind")
	// ErrNilOwner is returned when Build is called without an owner.
	ErrNilOwner = errors.New("assoc(builder): nil owner")
)

// Option configures a builder.
type Option func(*builder)

// WithConfig sets the builder configuration.
func WithConfig(cfg apis.Config) Option {
	return func(b *builder) { b.cfg = cfg }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(b *builder) {
		if log == nil {
			log = zap.NewNop()
		}
		b.log = log
	}
}

// WithCatalog sets the catalog declarations are recorded in.
func WithCatalog(cat apis.Catalog) Option {
	return func(b *builder) {
		if cat != nil {
			b.cat = cat
		}
	}
}

// WithResolver sets the class-name resolver handed to reflections.
func WithResolver(res apis.Resolver) Option {
	return func(b *builder) {
		if res != nil {
			b.res = res
		}
	}
}

// New creates an apis.Builder reading extensions from reg. A nil reg is
// replaced by an empty registry.
func New(reg apis.ExtensionRegistry, opts ...Option) apis.Builder {
	if reg == nil {
		reg = registry.New()
	}
	b := &builder{
		reg: reg,
		cfg: config.DefaultConfig(),
		log: zap.NewNop(),
		cat: registry.NewCatalog(),
		res: resolver.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reserved = make(map[string]struct{}, len(b.cfg.ReservedNames))
	for _, n := range b.cfg.ReservedNames {
		b.reserved[n] = struct{}{}
	}
	return b
}

// builder is immutable after New and safe for concurrent use as long as
// owners are not declared on concurrently.
type builder struct {
	reg      apis.ExtensionRegistry
	cfg      apis.Config
	log      *zap.Logger
	cat      apis.Catalog
	res      apis.Resolver
	reserved map[string]struct{}
}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// Build declares association name of kind on owner.
func (b *builder) Build(kind apis.Kind, owner apis.Model, name string, opts apis.Options) (apis.Reflection, error) {
	return b.BuildScoped(kind, owner, name, nil, opts)
}

// BuildScoped is Build with a scope stored on the reflection.
func (b *builder) BuildScoped(kind apis.Kind, owner apis.Model, name string, scope any, opts apis.Options) (apis.Reflection, error) {
	if kind == nil {
		return nil, ErrNilKind
	}
	if owner == nil {
		return nil, ErrNilOwner
	}

	if b.dangerous(owner, name) {
		return nil, b.fail(owner, name, &apis.NameConflictError{
			Name: name, Owner: owner.Name(), Reason: apis.ReasonDangerous,
		})
	}

	macro, err := MacroOf(kind)
	if err != nil {
		return nil, b.fail(owner, name, err)
	}

	table := owner.GeneratedAssociationMethods()
	redefine := accessor.Defined(table, name)
	if redefine && !b.cfg.AllowRedefinition {
		return nil, b.fail(owner, name, &apis.NameConflictError{
			Name: name, Owner: owner.Name(), Reason: apis.ReasonDefined,
		})
	}

	// One snapshot serves both option validation and the hook run, so a
	// concurrent Register cannot make them disagree.
	exts := b.reg.All()

	r, err := reflection.Create(owner, macro, name, scope, opts, options.Accepted(kind, exts), b.res)
	if err != nil {
		return nil, b.fail(owner, name, err)
	}
	if opts.Has(apis.OptionDependent) {
		allowed, err := ValidDependentOptions(kind)
		if err != nil {
			return nil, b.fail(owner, name, err)
		}
		if err := options.ValidateDependent(opts, allowed); err != nil {
			return nil, b.fail(owner, name, err)
		}
	}

	// A catalog conflict must surface before anything touches the owner.
	prior, recorded := b.cat.Lookup(owner, name)
	if recorded && !redefine {
		return nil, b.fail(owner, name, registry.ErrConflictingReflection)
	}
	if !redefine {
		prior = nil
	}

	snap := accessor.Capture(table, name)
	accessor.Install(table, name)

	// touched counts the extensions whose Build ran, including a failed one.
	touched := 0
	rollback := func(cause error) error {
		if b.cfg.Rollback {
			b.revert(exts[:touched], owner, r, prior)
			snap.Restore()
			b.log.Warn("association build rolled back",
				zap.String("owner", owner.Name()),
				zap.String("association", name),
				zap.Error(cause))
		}
		return b.fail(owner, name, cause)
	}

	for _, ext := range exts {
		touched++
		if err := ext.Build(owner, r); err != nil {
			return nil, rollback(fmt.Errorf("extension %T: %w", ext, err))
		}
	}
	if err := kind.DefineValidations(owner, r); err != nil {
		return nil, rollback(fmt.Errorf("define validations: %w", err))
	}

	record := b.cat.Add
	if redefine {
		record = b.cat.Replace
	}
	if err := record(r); err != nil {
		return nil, rollback(err)
	}

	b.log.Debug("association defined", logging.Reflection(r)...)
	return r, nil
}

// revert undoes r on every Reverter in exts, last first. When r was
// redefining prior, the reverted extension is built again for prior so the
// earlier declaration keeps its state.
func (b *builder) revert(exts []apis.Extension, owner apis.Model, r, prior apis.Reflection) {
	for i := len(exts) - 1; i >= 0; i-- {
		rv, ok := exts[i].(apis.Reverter)
		if !ok {
			continue
		}
		rv.Revert(owner, r)
		if prior == nil {
			continue
		}
		if err := exts[i].Build(owner, prior); err != nil {
			b.log.Warn("association restore failed",
				zap.String("owner", owner.Name()),
				zap.String("association", prior.Name()),
				zap.String("extension", fmt.Sprintf("%T", exts[i])),
				zap.Error(err))
		}
	}
}

func (b *builder) dangerous(owner apis.Model, name string) bool {
	if _, ok := b.reserved[name]; ok {
		return true
	}
	return owner.DangerousAttributeMethod(name)
}

func (b *builder) fail(owner apis.Model, name string, err error) error {
	return fmt.Errorf("assoc(builder): define %s.%s: %w", owner.Name(), name, err)
}

// MacroOf returns kind's macro, or a NotImplementedError when kind leaves
// it unset.
func MacroOf(kind apis.Kind) (apis.Macro, error) {
	m := kind.Macro()
	if !m.IsValid() {
		return apis.MacroUnknown, &apis.NotImplementedError{Kind: fmt.Sprintf("%T", kind), Method: "Macro"}
	}
	return m, nil
}

// ValidDependentOptions returns the dependent values kind accepts, or a
// NotImplementedError when kind does not declare them.
func ValidDependentOptions(kind apis.Kind) ([]string, error) {
	allowed := kind.ValidDependentOptions()
	if allowed == nil {
		return nil, &apis.NotImplementedError{Kind: fmt.Sprintf("%T", kind), Method: "ValidDependentOptions"}
	}
	return allowed, nil
}
