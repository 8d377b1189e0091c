package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rows(vs ...AppVersion) []AppVersion { return vs }

func TestComputeUpgradeBehindLatest(t *testing.T) {
	info, err := ComputeUpgrade(rows(
		AppVersion{Version: "1.3.0", Notes: "new player UI", ForceUpgrade: false},
		AppVersion{Version: "1.2.0", ForceUpgrade: true},
	), "1.2.0")
	require.NoError(t, err)

	require.Equal(t, "1.3.0", info.LatestVersion)
	require.True(t, info.NeedsUpgrade)
	// The caller sits on a force-flagged release, so the upgrade is forced
	// even though 1.3.0 itself is not flagged.
	require.True(t, info.ForceUpgrade)
	require.Equal(t, "new player UI", info.Notes)
}

func TestComputeUpgradeUpToDate(t *testing.T) {
	info, err := ComputeUpgrade(rows(
		AppVersion{Version: "1.3.0"},
		AppVersion{Version: "1.2.0"},
	), "1.3.0")
	require.NoError(t, err)

	require.False(t, info.NeedsUpgrade)
	require.False(t, info.ForceUpgrade)
	require.Equal(t, "1.3.0", info.LatestVersion)
}

func TestComputeUpgradeForceOnlyOnOlderRows(t *testing.T) {
	info, err := ComputeUpgrade(rows(
		AppVersion{Version: "1.1.0", ForceUpgrade: true},
		AppVersion{Version: "1.3.0"},
	), "1.2.0")
	require.NoError(t, err)

	require.True(t, info.NeedsUpgrade)
	require.False(t, info.ForceUpgrade, "a force flag below the caller's version must not apply")
}

func TestComputeUpgradeMissingCurrentVersion(t *testing.T) {
	info, err := ComputeUpgrade(rows(
		AppVersion{Version: "1.0.0"},
	), "")
	require.NoError(t, err)
	require.True(t, info.NeedsUpgrade)
}

func TestComputeUpgradeSkipsUnparseableRows(t *testing.T) {
	info, err := ComputeUpgrade(rows(
		AppVersion{Version: "not-a-version", ForceUpgrade: true},
		AppVersion{Version: "1.1.0"},
	), "1.0.0")
	require.NoError(t, err)

	require.Equal(t, "1.1.0", info.LatestVersion)
	require.False(t, info.ForceUpgrade)
}

func TestComputeUpgradeNoRows(t *testing.T) {
	_, err := ComputeUpgrade(nil, "1.0.0")
	require.ErrorIs(t, err, ErrNoVersions)
}
