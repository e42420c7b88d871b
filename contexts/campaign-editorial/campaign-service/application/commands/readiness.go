package commands

import (
	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/campaign-service/domain/errors"
)

func readinessError(campaignID string, readiness entities.Readiness) *domainerrors.ReadinessError {
	missing := make([]string, 0, len(readiness.Items))
	for _, key := range readiness.Missing() {
		missing = append(missing, string(key))
	}
	return &domainerrors.ReadinessError{CampaignID: campaignID, Missing: missing}
}
