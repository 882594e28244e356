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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blog = `
classes:
  - name: Post
    associations:
      - macro: embeds_many
        name: tags
        options:
          autosave: true
      - macro: embeds_one
        name: author
        options:
          class_name: Person
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
		assert.NotEmpty(t, cmd.Short, cmd.Name())
		assert.NotEmpty(t, cmd.Long, cmd.Name())
	}
	assert.True(t, names["check"])
	assert.True(t, names["describe"])
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", writeFile(t, "blog.yaml", blog))
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 2 associations on 1 classes")
}

func TestCheck_Failure(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
classes:
  - name: Post
    associations:
      - macro: embeds_one
        name: id
`)
	_, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Post.id")
}

func TestCheck_ReservedFromConfig(t *testing.T) {
	cfg := writeFile(t, "assoc.yaml", "reserved_names: [author]\nlog_level: error\n")
	path := writeFile(t, "blog.yaml", blog)

	_, err := run(t, "check", "--config", cfg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", writeFile(t, "blog.yaml", blog))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "OWNER")
	assert.Contains(t, lines[1], "embeds_many")
	assert.Contains(t, lines[1], "Tag")
	assert.Contains(t, lines[1], "autosave=true")
	assert.Contains(t, lines[2], "Person")
	assert.Contains(t, out, "1 classes, 2 associations")
}

func TestDescribe_CountsClassesWithoutAssociations(t *testing.T) {
	path := writeFile(t, "blog.yaml", blog+`
  - name: Tag
`)
	out, err := run(t, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 classes, 2 associations")

	out, err = run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 2 associations on 2 classes")
}
