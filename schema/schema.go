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

// Package schema loads declarative association schemas and applies them
// through a builder.
//
// A schema lists classes and the associations declared on each, in YAML or
// TOML:
//
//	classes:
//	  - name: Post
//	    associations:
//	      - macro: embeds_many
//	        name: tags
//	        options:
//	          class_name: Tag
//	  - name: Comment
//	    associations:
//	      - macro: embedded_in
//	        name: post
package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/kinds"
	"dirpx.dev/assoc/model"
)

// Format is a schema encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for file extensions other than
	// .yaml, .yml and .toml.
	ErrUnknownFormat = errors.New("assoc(schema): unknown schema format")
	// ErrDuplicateClass is returned when a class is listed twice.
	ErrDuplicateClass = errors.New("assoc(schema): duplicate class")
)

// Schema is a set of classes.
type Schema struct {
	Classes []Class `koanf:"classes" toml:"classes"`
}

// Class is one owner and its declarations.
type Class struct {
	Name string `koanf:"name" toml:"name"`
	// Dangerous lists extra member names of the class.
	Dangerous    []string      `koanf:"dangerous" toml:"dangerous"`
	Associations []Association `koanf:"associations" toml:"associations"`
}

// Association is one declaration.
type Association struct {
	Macro   string       `koanf:"macro" toml:"macro"`
	Name    string       `koanf:"name" toml:"name"`
	Options apis.Options `koanf:"options" toml:"options"`
}

// FormatOf derives the format from path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and parses the schema at path.
func Load(path string) (*Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assoc(schema): read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes data in format.
func Parse(data []byte, format Format) (*Schema, error) {
	s := &Schema{}
	switch format {
	case YAML:
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("assoc(schema): parse yaml: %w", err)
		}
		if err := k.Unmarshal("", s); err != nil {
			return nil, fmt.Errorf("assoc(schema): decode yaml: %w", err)
		}
	case TOML:
		if _, err := toml.Decode(string(data), s); err != nil {
			return nil, fmt.Errorf("assoc(schema): parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// Result is the outcome of Apply.
type Result struct {
	// Classes maps class names to the created classes.
	Classes map[string]*model.Class
	// Reflections holds every successful declaration in schema order.
	Reflections []apis.Reflection
}

// Apply creates one model.Class per schema class and declares every
// association through b. It keeps going after a failed declaration and
// returns all failures joined.
func Apply(s *Schema, b apis.Builder, opts ...model.ClassOption) (*Result, error) {
	res := &Result{Classes: make(map[string]*model.Class, len(s.Classes))}
	var errs []error

	for _, sc := range s.Classes {
		if _, ok := res.Classes[sc.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateClass, sc.Name))
			continue
		}
		classOpts := append([]model.ClassOption{model.WithDangerousNames(sc.Dangerous...)}, opts...)
		class := model.NewClass(sc.Name, classOpts...)
		res.Classes[sc.Name] = class

		for _, sa := range sc.Associations {
			r, err := declare(b, class, sa)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", sc.Name, sa.Name, err))
				continue
			}
			res.Reflections = append(res.Reflections, r)
		}
	}
	return res, errors.Join(errs...)
}

func declare(b apis.Builder, owner *model.Class, sa Association) (apis.Reflection, error) {
	macro, err := apis.ParseMacro(sa.Macro)
	if err != nil {
		return nil, err
	}
	kind, ok := kinds.ByMacro(macro)
	if !ok {
		return nil, fmt.Errorf("assoc(schema): no kind for macro %s", macro)
	}
	return b.Build(kind, owner, sa.Name, sa.Options)
}
