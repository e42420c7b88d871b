package entities

import domainerrors "brandbridge/contexts/asset-distribution/engagement-ledger/domain/errors"

type VersionStatus string

const (
	VersionStatusLatest          VersionStatus = "latest"
	VersionStatusUpdateAvailable VersionStatus = "update_available"
	VersionStatusSourceDeleted   VersionStatus = "source_deleted"
)

func IsSupportedVersionStatus(value VersionStatus) bool {
	switch value {
	case VersionStatusLatest, VersionStatusUpdateAvailable, VersionStatusSourceDeleted:
		return true
	default:
		return false
	}
}

// freshnessTransitions covers brand-side changes. Downloads move
// update_available back to latest through Redownload.
var freshnessTransitions = map[VersionStatus]map[VersionStatus]bool{
	VersionStatusLatest: {
		VersionStatusUpdateAvailable: true,
		VersionStatusSourceDeleted:   true,
	},
	VersionStatusUpdateAvailable: {
		VersionStatusUpdateAvailable: true,
		VersionStatusSourceDeleted:   true,
	},
	VersionStatusSourceDeleted: {
		VersionStatusSourceDeleted: true,
	},
}

// MarkFreshness applies a brand-side freshness change. changed is false when
// the entry already had the target status.
func (e DownloadLogEntry) MarkFreshness(target VersionStatus) (DownloadLogEntry, bool, error) {
	if !freshnessTransitions[e.CurrentVersionStatus][target] {
		if e.CurrentVersionStatus == VersionStatusSourceDeleted {
			return DownloadLogEntry{}, false, domainerrors.ErrSourceDeleted
		}
		return DownloadLogEntry{}, false, domainerrors.ErrInvalidFreshnessTransition
	}
	if e.CurrentVersionStatus == target {
		return e, false, nil
	}
	updated := e
	updated.Logs = append([]LogEvent(nil), e.Logs...)
	updated.CurrentVersionStatus = target
	return updated, true, nil
}
