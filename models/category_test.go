// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_JSONRoundTrip(t *testing.T) {
	for _, c := range AllCategories() {
		b, err := json.Marshal(c)
		require.NoError(t, err)

		var got Category
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, c, got)
	}
}

func TestCategory_UnknownNameIsRejected(t *testing.T) {
	var c Category
	err := json.Unmarshal([]byte(`"not-a-category"`), &c)
	assert.Error(t, err)
}

func TestCategory_WireNameIsUnabbreviated(t *testing.T) {
	b, err := json.Marshal(CategoryAuthentication)
	require.NoError(t, err)
	assert.JSONEq(t, `"authentication"`, string(b))

	c, ok := ParseCategory("authentication")
	require.True(t, ok)
	assert.Equal(t, CategoryAuthentication, c)
}

func TestCategory_FilenameAndContextString(t *testing.T) {
	assert.Equal(t, "auth.enc", CategoryAuthentication.Filename())
	assert.Equal(t, "category-auth", CategoryAuthentication.ContextString())
}

func TestAllCategories_HasSixMembersInFixedOrder(t *testing.T) {
	all := AllCategories()
	require.Len(t, all, 6)
	assert.Equal(t, CategoryAuthentication, all[0])
	assert.Equal(t, CategoryPatterns, all[5])
}
