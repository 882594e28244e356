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

package model_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/assoc/accessor"
	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/model"
)

type Article struct {
	Title string
}

func (*Article) Publish() error { return nil }

func TestNewClass_DangerousNames(t *testing.T) {
	c := model.NewClass("Post", model.WithDangerousNames("title"))

	assert.Equal(t, "Post", c.Name())
	for _, n := range model.DefaultDangerousNames {
		assert.True(t, c.DangerousAttributeMethod(n), n)
	}
	assert.True(t, c.DangerousAttributeMethod("title"))
	assert.False(t, c.DangerousAttributeMethod("author"))
}

func TestClassFor(t *testing.T) {
	c, err := model.ClassFor[Article]()
	require.NoError(t, err)

	assert.Equal(t, "Article", c.Name())
	assert.True(t, c.DangerousAttributeMethod("title"))
	assert.True(t, c.DangerousAttributeMethod("publish"))
	assert.True(t, c.DangerousAttributeMethod("save"))
	assert.False(t, c.DangerousAttributeMethod("comments"))
}

func TestClassFor_RejectsNonStruct(t *testing.T) {
	_, err := model.ClassFor[int]()
	assert.Error(t, err)
}

func TestMethodTable(t *testing.T) {
	table := model.NewMethodTable()
	m := func(apis.Instance, ...any) (any, error) { return 1, nil }

	table.Define("b", m)
	table.Define("a", m)
	assert.Equal(t, []string{"a", "b"}, table.Names())

	_, ok := table.Lookup("a")
	assert.True(t, ok)
	table.Remove("a")
	_, ok = table.Lookup("a")
	assert.False(t, ok)
	table.Remove("missing")
	assert.Equal(t, []string{"b"}, table.Names())
}

func TestRecord_AssociationIsLazyAndCached(t *testing.T) {
	created := 0
	c := model.NewClass("Post", model.WithRuntime(func(rec *model.Record, name string) (apis.Association, error) {
		created++
		return &box{}, nil
	}))
	accessor.Install(c.GeneratedAssociationMethods(), "author")

	rec := c.New()
	assert.Same(t, c, rec.Class())
	assert.Zero(t, created)

	a1, err := rec.Association("author")
	require.NoError(t, err)
	a2, err := rec.Association("author")
	require.NoError(t, err)
	assert.Same(t, a1, a2)
	assert.Equal(t, 1, created)

	_, err = c.New().Association("author")
	require.NoError(t, err)
	assert.Equal(t, 2, created, "runtimes are per record")
}

func TestRecord_UnknownAssociation(t *testing.T) {
	rec := model.NewClass("Post").New()
	_, err := rec.Association("author")
	assert.ErrorIs(t, err, model.ErrUnknownAssociation)

	_, err = rec.Call("author")
	assert.ErrorIs(t, err, model.ErrNoMethod)
}

func TestRecord_RuntimeError(t *testing.T) {
	boom := errors.New("boom")
	c := model.NewClass("Post", model.WithRuntime(func(*model.Record, string) (apis.Association, error) {
		return nil, boom
	}))
	accessor.Install(c.GeneratedAssociationMethods(), "author")

	_, err := c.New().Get("author")
	assert.ErrorIs(t, err, boom)
}

func TestRecord_GetSet(t *testing.T) {
	c := model.NewClass("Post")
	accessor.Install(c.GeneratedAssociationMethods(), "tags")

	a, b := c.New(), c.New()
	require.NoError(t, a.Set("tags", []string{"go"}))

	got, err := a.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got)

	got, err = b.Get("tags")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidations(t *testing.T) {
	c := model.NewClass("Post")
	c.AddValidation(apis.Rule{Name: "validates_associated_tags", Association: "tags", Macro: apis.EmbedsMany})
	c.AddValidation(apis.Rule{Name: "validates_associated_author", Association: "author", Macro: apis.EmbedsOne})

	got := c.Validations()
	require.Len(t, got, 2)
	assert.Equal(t, "validates_associated_tags", got[0].Name)

	got[0].Name = "mutated"
	assert.Equal(t, "validates_associated_tags", c.Validations()[0].Name)
}

func TestAddValidation_ReplacesByName(t *testing.T) {
	c := model.NewClass("Post")
	c.AddValidation(apis.Rule{Name: "validates_associated_tags", Association: "tags", Macro: apis.EmbedsMany})
	c.AddValidation(apis.Rule{Name: "validates_associated_author", Association: "author", Macro: apis.EmbedsOne})
	c.AddValidation(apis.Rule{Name: "validates_associated_tags", Association: "tags", Macro: apis.EmbedsOne})

	got := c.Validations()
	require.Len(t, got, 2)
	assert.Equal(t, "validates_associated_tags", got[0].Name)
	assert.Equal(t, apis.EmbedsOne, got[0].Macro)
}

func TestCallbacks(t *testing.T) {
	c := model.NewClass("Post")
	var order []string
	cb := func(name string) apis.Callback {
		return apis.Callback{Name: name, Event: apis.BeforeSave, Fn: func(apis.Instance) error {
			order = append(order, name)
			return nil
		}}
	}
	c.AddCallback(cb("first"))
	c.AddCallback(cb("second"))
	c.AddCallback(apis.Callback{Name: "after", Event: apis.AfterSave})
	c.AddCallback(cb("first"))

	require.Len(t, c.Callbacks(apis.BeforeSave), 2)
	require.NoError(t, c.New().RunCallbacks(apis.BeforeSave))
	assert.Equal(t, []string{"first", "second"}, order)

	c.RemoveCallback("first")
	c.RemoveCallback("missing")
	require.Len(t, c.Callbacks(apis.BeforeSave), 1)
	assert.Equal(t, "second", c.Callbacks(apis.BeforeSave)[0].Name)
	require.NoError(t, c.New().RunCallbacks(apis.AfterSave))
}

func TestRunCallbacks_StopsAtError(t *testing.T) {
	c := model.NewClass("Post")
	boom := errors.New("boom")
	ran := false
	c.AddCallback(apis.Callback{Name: "fails", Event: apis.BeforeSave, Fn: func(apis.Instance) error { return boom }})
	c.AddCallback(apis.Callback{Name: "later", Event: apis.BeforeSave, Fn: func(apis.Instance) error {
		ran = true
		return nil
	}})

	err := c.New().RunCallbacks(apis.BeforeSave)
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
}

func TestRecord_ConcurrentAssociation(t *testing.T) {
	c := model.NewClass("Post")
	accessor.Install(c.GeneratedAssociationMethods(), "author")
	rec := c.New()

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]apis.Association, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := rec.Association("author")
			if err != nil {
				t.Errorf("Association: %v", err)
				return
			}
			got[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, got[0], got[i])
	}
}

type box struct{ v any }

func (b *box) Reader() any        { return b.v }
func (b *box) Writer(v any) error { b.v = v; return nil }
