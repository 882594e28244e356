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

package apis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNameConflict matches every NameConflictError.
	ErrNameConflict = errors.New("assoc: association name conflict")
	// ErrInvalidName matches every InvalidNameError.
	ErrInvalidName = errors.New("assoc: invalid association name")
	// ErrInvalidOption matches every OptionError.
	ErrInvalidOption = errors.New("assoc: invalid association option")
	// ErrNotImplemented matches every NotImplementedError.
	ErrNotImplemented = errors.New("assoc: not implemented")
)

// Reasons carried by NameConflictError.
const (
	// ReasonDangerous means the owner reports the name as dangerous or it is
	// configured as reserved.
	ReasonDangerous = "dangerous"
	// ReasonDefined means accessors for the name are already installed.
	ReasonDefined = "defined"
)

// NameConflictError is returned when an association name would override a
// member the owner already relies on.
type NameConflictError struct {
	// Name is the offending association name.
	Name string
	// Owner is the owner's name.
	Owner string
	// Reason is ReasonDangerous or ReasonDefined.
	Reason string
}

func (e *NameConflictError) Error() string {
	if e.Reason == ReasonDefined {
		return fmt.Sprintf("assoc: association %q is already defined on model %s; "+
			"enable redefinition or choose a different association name", e.Name, e.Owner)
	}
	return fmt.Sprintf("assoc: you tried to define an association named %q on model %s, "+
		"but this conflicts with a method %q already defined by the model; "+
		"choose a different association name", e.Name, e.Owner, e.Name)
}

// Is makes errors.Is(err, ErrNameConflict) hold.
func (e *NameConflictError) Is(target error) bool { return target == ErrNameConflict }

// InvalidNameError is returned when an association name is not a
// well-formed identifier.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("assoc: association name %q is not a valid identifier", e.Name)
}

// Is makes errors.Is(err, ErrInvalidName) hold.
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// OptionError is returned for an unknown option key, or for a value outside
// the accepted set when Value is set.
type OptionError struct {
	// Key is the offending option key.
	Key string
	// Value is the offending value; nil for unknown keys.
	Value any
	// Accepted lists the accepted keys, or the accepted values when Value is set.
	Accepted []string
}

func (e *OptionError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("assoc: option %q must be one of [%s], got %v",
			e.Key, strings.Join(e.Accepted, ", "), e.Value)
	}
	return fmt.Sprintf("assoc: unknown key %q, valid keys are [%s]",
		e.Key, strings.Join(e.Accepted, ", "))
}

// Is makes errors.Is(err, ErrInvalidOption) hold.
func (e *OptionError) Is(target error) bool { return target == ErrInvalidOption }

// NotImplementedError is returned when an association kind does not fulfil
// part of the Kind contract.
type NotImplementedError struct {
	// Kind is the Go type of the kind, e.g. "kinds.Association".
	Kind string
	// Method is the contract method that is missing.
	Method string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("assoc: %s does not implement %s", e.Kind, e.Method)
}

// Is makes errors.Is(err, ErrNotImplemented) hold.
func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }
