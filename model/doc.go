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

// Package model is a reference owner for association declarations.
//
// A Class is the modeling class associations are declared on: it reports
// dangerous member names, owns the generated-accessor method table and
// accepts validation rules and lifecycle callbacks. A Record is one instance
// of a Class; it lazily creates one association runtime per declared name
// and dispatches generated methods through the class's table.
//
//	post := model.NewClass("Post")
//	_, err := builder.New(registry.New()).Build(kinds.EmbedsMany{}, post, "tags", apis.Options{"class_name": "Tag"})
//	rec := post.New()
//	_ = rec.Set("tags", []string{"go"})
//	tags, _ := rec.Get("tags")
//
// The runtime that actually resolves targets is pluggable through
// WithRuntime; the default simply holds the last written value.
package model
