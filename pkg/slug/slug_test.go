// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/newsroom/pkg/slug"
)

func TestFrom(t *testing.T) {
	cases := map[string]string{
		"football":          "football",
		"Crème Brûlée":      "creme-brulee",
		"  Hello,   World ": "hello-world",
		"--already--slug--": "already-slug",
		"coding_in_go":      "coding-in-go",
		"日本":                "",
	}

	for input, want := range cases {
		assert.Equal(t, want, slug.From(input), input)
	}
}

func TestIsNormalized(t *testing.T) {
	assert.True(t, slug.IsNormalized("cooking"))
	assert.True(t, slug.IsNormalized("web-dev-2"))
	assert.False(t, slug.IsNormalized(""))
	assert.False(t, slug.IsNormalized("Cooking"))
	assert.False(t, slug.IsNormalized("-cooking"))
	assert.False(t, slug.IsNormalized("cats and dogs"))
}
