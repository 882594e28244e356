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

package autosave_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/builder"
	"dirpx.dev/assoc/extensions/autosave"
	"dirpx.dev/assoc/kinds"
	"dirpx.dev/assoc/model"
	"dirpx.dev/assoc/registry"
)

func setup(t *testing.T, exts ...apis.Extension) apis.Builder {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(autosave.New()))
	for _, e := range exts {
		require.NoError(t, reg.Register(e))
	}
	return builder.New(reg)
}

// counted returns a class whose records count their before_save runs.
func counted(name string, saves *int, err error) *model.Class {
	c := model.NewClass(name)
	c.AddCallback(apis.Callback{Name: "count", Event: apis.BeforeSave, Fn: func(apis.Instance) error {
		*saves++
		return err
	}})
	return c
}

func TestOptionRejectedWithoutExtension(t *testing.T) {
	_, err := builder.New(registry.New()).Build(kinds.EmbedsOne{}, model.NewClass("Post"), "author",
		apis.Options{autosave.Option: true})
	assert.ErrorIs(t, err, apis.ErrInvalidOption)
}

func TestRegistersCallback(t *testing.T) {
	b := setup(t)
	post := model.NewClass("Post")

	_, err := b.Build(kinds.EmbedsOne{}, post, "author", apis.Options{autosave.Option: true})
	require.NoError(t, err)
	_, err = b.Build(kinds.EmbedsMany{}, post, "tags", apis.Options{autosave.Option: false})
	require.NoError(t, err)
	_, err = b.Build(kinds.EmbedsMany{}, post, "comments", nil)
	require.NoError(t, err)

	cbs := post.Callbacks(apis.BeforeSave)
	require.Len(t, cbs, 1)
	assert.Equal(t, "autosave_associated_records_for_author", cbs[0].Name)
	assert.Equal(t, autosave.CallbackName("author"), cbs[0].Name)
}

func TestNonBoolValue(t *testing.T) {
	b := setup(t)
	post := model.NewClass("Post")

	_, err := b.Build(kinds.EmbedsOne{}, post, "author", apis.Options{autosave.Option: "yes"})
	var optErr *apis.OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "yes", optErr.Value)
	assert.Empty(t, post.GeneratedAssociationMethods().Names())
}

func TestSavesTargets(t *testing.T) {
	b := setup(t)
	post := model.NewClass("Post")
	_, err := b.Build(kinds.EmbedsOne{}, post, "author", apis.Options{autosave.Option: true})
	require.NoError(t, err)
	_, err = b.Build(kinds.EmbedsMany{}, post, "comments", apis.Options{autosave.Option: true})
	require.NoError(t, err)

	var authorSaves, commentSaves int
	author := counted("Author", &authorSaves, nil).New()
	comment := counted("Comment", &commentSaves, nil)

	rec := post.New()
	require.NoError(t, rec.Set("author", author))
	require.NoError(t, rec.Set("comments", []any{comment.New(), "not a record", comment.New()}))

	require.NoError(t, rec.RunCallbacks(apis.BeforeSave))
	assert.Equal(t, 1, authorSaves)
	assert.Equal(t, 2, commentSaves)

	require.NoError(t, post.New().RunCallbacks(apis.BeforeSave), "unset associations are skipped")
}

func TestSaveErrorPropagates(t *testing.T) {
	b := setup(t)
	post := model.NewClass("Post")
	_, err := b.Build(kinds.EmbedsMany{}, post, "comments", apis.Options{autosave.Option: true})
	require.NoError(t, err)

	boom := errors.New("invalid comment")
	var saves int
	comment := counted("Comment", &saves, boom)
	rec := post.New()
	require.NoError(t, rec.Set("comments", []autosave.Saver{comment.New()}))

	err = rec.RunCallbacks(apis.BeforeSave)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "comments[0]")
}

// failing fails every hook.
type failing struct{}

func (failing) ValidOptions() []string                  { return nil }
func (failing) Build(apis.Model, apis.Reflection) error { return errors.New("nope") }

func TestRevertedOnLaterFailure(t *testing.T) {
	b := setup(t, failing{})
	post := model.NewClass("Post")

	_, err := b.Build(kinds.EmbedsOne{}, post, "author", apis.Options{autosave.Option: true})
	require.Error(t, err)
	assert.Empty(t, post.Callbacks(apis.BeforeSave))
}
