// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/screening-engine/pkg/types"
)

func TestResolveKnownName(t *testing.T) {
	info, err := Resolver{}.Resolve("EGFR")
	require.NoError(t, err)

	assert.Equal(t, "1A4G", info.TargetID)
	assert.Equal(t, "EGFR", info.TargetName)
	assert.Equal(t, "A", info.Chain)
}

func TestResolveNormalizesInput(t *testing.T) {
	info, err := Resolver{}.Resolve("  braf ")
	require.NoError(t, err)

	assert.Equal(t, "5VAM", info.TargetID)
	assert.Equal(t, "BRAF", info.TargetName)
}

func TestResolvePDBID(t *testing.T) {
	info, err := Resolver{}.Resolve("6M0J")
	require.NoError(t, err)

	assert.Equal(t, "6M0J", info.TargetID)
	assert.Equal(t, "ACE2", info.TargetName, "catalog IDs reverse-map to their protein name")
}

func TestResolveUnknownPDBID(t *testing.T) {
	info, err := Resolver{}.Resolve("9XYZ")
	require.NoError(t, err)

	assert.Equal(t, "9XYZ", info.TargetID)
	assert.Equal(t, "Unknown", info.TargetName)
}

func TestResolveUnknownTarget(t *testing.T) {
	_, err := Resolver{}.Resolve("UNKNOWN_PROTEIN")
	require.Error(t, err)

	var se *types.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "target", se.Stage)
	assert.Contains(t, se.Message, "UNKNOWN_PROTEIN")
	assert.Equal(t, Available(), se.AvailableTargets)
	assert.Contains(t, se.AvailableTargets, "EGFR")
	assert.Len(t, se.AvailableTargets, 10)
}

func TestAvailableIsSorted(t *testing.T) {
	names := Available()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
