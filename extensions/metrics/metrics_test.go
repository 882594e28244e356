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

package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/builder"
	"dirpx.dev/assoc/extensions/metrics"
	"dirpx.dev/assoc/kinds"
	"dirpx.dev/assoc/model"
	"dirpx.dev/assoc/registry"
)

func TestCountsDeclarations(t *testing.T) {
	promReg := prometheus.NewRegistry()
	ext := metrics.New(promReg)
	reg := registry.New()
	require.NoError(t, reg.Register(ext))
	b := builder.New(reg)

	post, comment := model.NewClass("Post"), model.NewClass("Comment")
	_, err := b.Build(kinds.EmbedsMany{}, post, "tags", nil)
	require.NoError(t, err)
	_, err = b.Build(kinds.EmbedsMany{}, post, "comments", nil)
	require.NoError(t, err)
	_, err = b.Build(kinds.EmbeddedIn{}, comment, "post", nil)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(ext.Declarations().WithLabelValues("Post", "embeds_many")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ext.Declarations().WithLabelValues("Comment", "embedded_in")))

	expected := `
# HELP assoc_declarations_total Total number of association declarations by owner and macro.
# TYPE assoc_declarations_total counter
assoc_declarations_total{macro="embedded_in",owner="Comment"} 1
assoc_declarations_total{macro="embeds_many",owner="Post"} 2
`
	require.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(expected), "assoc_declarations_total"))
}

func TestNoAcceptedKeys(t *testing.T) {
	ext := metrics.New(prometheus.NewRegistry())
	assert.Empty(t, ext.ValidOptions())

	_, err := builder.New(registry.New()).Build(kinds.EmbedsOne{}, model.NewClass("Post"), "author",
		apis.Options{"metrics": true})
	assert.ErrorIs(t, err, apis.ErrInvalidOption)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics.New(promReg)
	assert.Panics(t, func() { metrics.New(promReg) })
}
