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

package accessor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/assoc/accessor"
	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/model"
)

// fakeAssociation records writes.
type fakeAssociation struct {
	value  any
	writes int
	err    error
}

func (f *fakeAssociation) Reader() any { return f.value }

func (f *fakeAssociation) Writer(v any) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.value = v
	return nil
}

// fakeInstance hands out one association per name and counts lookups.
type fakeInstance struct {
	assocs  map[string]*fakeAssociation
	lookups []string
}

func newInstance(names ...string) *fakeInstance {
	in := &fakeInstance{assocs: map[string]*fakeAssociation{}}
	for _, n := range names {
		in.assocs[n] = &fakeAssociation{}
	}
	return in
}

func (f *fakeInstance) Association(name string) (apis.Association, error) {
	f.lookups = append(f.lookups, name)
	a, ok := f.assocs[name]
	if !ok {
		return nil, errors.New("no such association")
	}
	return a, nil
}

func TestNames(t *testing.T) {
	assert.Equal(t, "author", accessor.ReaderName("author"))
	assert.Equal(t, "author=", accessor.WriterName("author"))
}

func TestInstall_DefinesReaderAndWriter(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")

	assert.Equal(t, []string{"author", "author="}, table.Names())
	assert.True(t, accessor.Defined(table, "author"))
	assert.False(t, accessor.Defined(table, "tags"))
}

func TestReaderDelegates(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")
	in := newInstance("author")
	in.assocs["author"].value = "alice"

	read, _ := table.Lookup("author")
	got, err := read(in)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Equal(t, []string{"author"}, in.lookups)
}

func TestWriterDelegates(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")
	in := newInstance("author")

	write, _ := table.Lookup("author=")
	got, err := write(in, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got)
	assert.Equal(t, 1, in.assocs["author"].writes)
	assert.Equal(t, "bob", in.assocs["author"].value)
}

func TestWriterPropagatesRuntimeError(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")
	in := newInstance("author")
	boom := errors.New("boom")
	in.assocs["author"].err = boom

	write, _ := table.Lookup("author=")
	_, err := write(in, "bob")
	assert.ErrorIs(t, err, boom)
}

func TestArity(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")
	in := newInstance("author")

	read, _ := table.Lookup("author")
	write, _ := table.Lookup("author=")

	_, err := read(in, "extra")
	assert.ErrorIs(t, err, accessor.ErrArity)
	_, err = write(in)
	assert.ErrorIs(t, err, accessor.ErrArity)
	_, err = write(in, 1, 2)
	assert.ErrorIs(t, err, accessor.ErrArity)
	assert.Empty(t, in.lookups, "arity is checked before resolving the runtime")
}

func TestNilReceiver(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")

	read, _ := table.Lookup("author")
	_, err := read(nil)
	assert.ErrorIs(t, err, accessor.ErrNilReceiver)
}

func TestAccessorsAreIndependentPerInstance(t *testing.T) {
	table := model.NewMethodTable()
	accessor.Install(table, "author")
	a, b := newInstance("author"), newInstance("author")

	write, _ := table.Lookup("author=")
	read, _ := table.Lookup("author")
	_, err := write(a, "alice")
	require.NoError(t, err)

	got, err := read(b)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotRestore(t *testing.T) {
	table := model.NewMethodTable()
	custom := func(apis.Instance, ...any) (any, error) { return "custom", nil }
	table.Define("author", custom)

	snap := accessor.Capture(table, "author")
	accessor.Install(table, "author")
	assert.Equal(t, []string{"author", "author="}, table.Names())

	snap.Restore()
	assert.Equal(t, []string{"author"}, table.Names())
	m, ok := table.Lookup("author")
	require.True(t, ok)
	got, _ := m(nil)
	assert.Equal(t, "custom", got)
}

func TestSnapshotRestore_EmptyTable(t *testing.T) {
	table := model.NewMethodTable()
	snap := accessor.Capture(table, "tags")
	accessor.Install(table, "tags")
	snap.Restore()
	assert.Empty(t, table.Names())

	accessor.Snapshot{}.Restore()
}
