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

// Package autosave saves embedded targets together with their owner.
//
// Registering the extension makes the autosave option acceptable on every
// association. When autosave is true and the owner accepts callbacks, a
// before_save callback named autosave_associated_records_for_<name> is
// attached; it runs the target's own before_save callbacks.
package autosave

import (
	"fmt"

	"dirpx.dev/assoc/apis"
)

// Option is the key contributed by this extension.
const Option = "autosave"

// CallbackPrefix prefixes the name of every callback registered here.
const CallbackPrefix = "autosave_associated_records_for_"

// Saver is implemented by targets that can run their own save callbacks.
type Saver interface {
	RunCallbacks(event apis.CallbackEvent) error
}

// Extension is the autosave extension.
type Extension struct{}

// Ensure Extension implements apis.Extension and apis.Reverter.
var (
	_ apis.Extension = (*Extension)(nil)
	_ apis.Reverter  = (*Extension)(nil)
)

// New returns the autosave extension.
func New() *Extension { return &Extension{} }

// ValidOptions returns [autosave].
func (*Extension) ValidOptions() []string { return []string{Option} }

// Build attaches the save callback for r when requested.
func (*Extension) Build(owner apis.Model, r apis.Reflection) error {
	v, ok := r.Option(Option)
	if !ok {
		return nil
	}
	enabled, isBool := v.(bool)
	if !isBool {
		return &apis.OptionError{Key: Option, Value: v, Accepted: []string{"true", "false"}}
	}
	cr, ok := owner.(apis.CallbackRegistrar)
	if !enabled || !ok {
		return nil
	}

	name := r.Name()
	cr.AddCallback(apis.Callback{
		Name:  CallbackName(name),
		Event: apis.BeforeSave,
		Fn: func(recv apis.Instance) error {
			return saveAssociated(recv, name)
		},
	})
	return nil
}

// Revert removes the callback Build attached.
func (*Extension) Revert(owner apis.Model, r apis.Reflection) {
	if cr, ok := owner.(apis.CallbackRegistrar); ok {
		cr.RemoveCallback(CallbackName(r.Name()))
	}
}

// CallbackName returns the callback name used for association name.
func CallbackName(name string) string { return CallbackPrefix + name }

func saveAssociated(recv apis.Instance, name string) error {
	a, err := recv.Association(name)
	if err != nil {
		return err
	}
	switch v := a.Reader().(type) {
	case nil:
		return nil
	case Saver:
		return save(v, name)
	case []Saver:
		for i, s := range v {
			if err := save(s, fmt.Sprintf("%s[%d]", name, i)); err != nil {
				return err
			}
		}
	case []any:
		for i, e := range v {
			if s, ok := e.(Saver); ok {
				if err := save(s, fmt.Sprintf("%s[%d]", name, i)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func save(s Saver, path string) error {
	if err := s.RunCallbacks(apis.BeforeSave); err != nil {
		return fmt.Errorf("assoc(autosave): %s: %w", path, err)
	}
	return nil
}
