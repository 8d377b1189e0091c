package version

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// UpgradeInfo is the upgrade decision for a caller's current version.
type UpgradeInfo struct {
	LatestVersion string `json:"latestVersion"`
	NeedsUpgrade  bool   `json:"needsUpgrade"`
	ForceUpgrade  bool   `json:"forceUpgrade"`
	Notes         string `json:"notes"`
}

// Service computes upgrade decisions from released version rows.
type Service struct {
	repo *Repository
}

// NewService creates a new version Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Check loads all version rows and compares them against the caller's
// current version.
func (s *Service) Check(ctx context.Context, currentVersion string) (*UpgradeInfo, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}
	return ComputeUpgrade(rows, currentVersion)
}

// ComputeUpgrade derives the upgrade decision:
//   - latestVersion is the highest semantic version across all rows;
//   - needsUpgrade is true when the caller is behind latestVersion;
//   - forceUpgrade is true when any force-flagged row is at or above the
//     caller's version, so a caller sitting on a force-flagged release must
//     upgrade even if newer releases are not themselves flagged.
//
// A missing or unparseable currentVersion is treated as 0.0.0. Rows with
// unparseable version strings are ignored.
func ComputeUpgrade(rows []AppVersion, currentVersion string) (*UpgradeInfo, error) {
	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		current = semver.MustParse("0.0.0")
	}

	var (
		latest      *semver.Version
		latestNotes string
		force       bool
	)
	for _, row := range rows {
		v, err := semver.NewVersion(row.Version)
		if err != nil {
			continue
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
			latestNotes = row.Notes
		}
		if row.ForceUpgrade && !v.LessThan(current) {
			force = true
		}
	}
	if latest == nil {
		return nil, ErrNoVersions
	}

	return &UpgradeInfo{
		LatestVersion: latest.Original(),
		NeedsUpgrade:  current.LessThan(latest),
		ForceUpgrade:  force,
		Notes:         latestNotes,
	}, nil
}
