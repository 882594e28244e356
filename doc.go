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

// Package assoc declares embedded associations between modeling classes.
//
// An owner class declares a named association to another modeling concept
// ("a Post embeds many Tags"). Declaring it turns a kind, a name and a map
// of options into three things:
//
//   - an immutable apis.Reflection describing the association (kind tag,
//     name, validated options, owner, resolved target class name);
//   - a reader "name" and a writer "name=" installed in the owner's method
//     table, each delegating to the association runtime of the receiving
//     instance;
//   - whatever each registered apis.Extension attaches to the owner in its
//     construction hook (callbacks, counters, ...).
//
// # Design
//
// The package holds a read-mostly global snapshot (state):
//
//   - Config: redefinition and rollback policy, reserved names, logging.
//
//   - Registry: the process-wide, append-only list of extensions. Every
//     extension contributes option keys and a hook that runs for every
//     association declared after it is registered.
//
//   - Catalog: every reflection declared through the global builder,
//     queryable per owner in declaration order.
//
//   - Builder: the orchestrator that checks the name, validates options
//     against the built-in keys, the kind's keys and every extension's keys,
//     creates the reflection, installs accessors, runs extension hooks in
//     registration order and finally the kind's validations.
//
// Readers load the current snapshot atomically and never lock. Writers take
// a short build mutex, assemble a new state and publish it with an atomic
// pointer swap.
//
// # Usage pattern in a binary
//
//  1. Register extensions during startup:
//
//     _ = assoc.Register(autosave.New())
//     _ = assoc.Register(metrics.New(prometheus.DefaultRegisterer))
//
//  2. Optionally load configuration (YAML file, ASSOC_* environment):
//
//     _ = assoc.LoadConfig("assoc.yaml")
//
//  3. Declare associations while defining classes:
//
//     post := model.NewClass("Post")
//     _, err := assoc.EmbedsMany(post, "tags", apis.Options{"class_name": "Tag"})
//
//  4. Use the generated accessors on instances:
//
//     rec := post.New()
//     _ = rec.Set("tags", tags)
//
//  5. In tests, call assoc.SetAll(...) for a clean registry and catalog.
//
// # Errors
//
// Declarations fail fast with typed errors from package apis:
// NameConflictError for dangerous, reserved or already defined names,
// InvalidNameError for malformed identifiers, OptionError for unknown keys
// or rejected values, and NotImplementedError for kinds that leave part of
// the contract open. All are construction-time and non-retryable.
//
// When a hook fails after accessors were installed, the builder reverts the
// hooks that already ran and restores the method table, so a failed
// declaration leaves the owner as it found it.
//
// # Concurrency model
//
// Declarations usually happen during single-threaded startup. The registry
// and catalog are nevertheless safe for concurrent use: the registry
// publishes copy-on-write snapshots, and a declaration reads exactly one
// snapshot for both option validation and hook execution.
package assoc
