package entities

type StatusAction string

const (
	StatusActionPublish           StatusAction = "publish"
	StatusActionEnd               StatusAction = "end"
	StatusActionReactivate        StatusAction = "reactivate"
	StatusActionStartMaintenance  StatusAction = "start_maintenance"
	StatusActionFinishMaintenance StatusAction = "finish_maintenance"
	StatusActionArchive           StatusAction = "archive"
)

type statusTransition struct {
	from  []CampaignStatus
	to    CampaignStatus
	gated bool
}

var statusTransitions = map[StatusAction]statusTransition{
	StatusActionPublish: {
		from:  []CampaignStatus{CampaignStatusDraft, CampaignStatusScheduled},
		to:    CampaignStatusActive,
		gated: true,
	},
	StatusActionEnd: {
		from: []CampaignStatus{CampaignStatusActive, CampaignStatusMaintenance},
		to:   CampaignStatusEnded,
	},
	StatusActionReactivate: {
		from: []CampaignStatus{CampaignStatusEnded},
		to:   CampaignStatusActive,
	},
	StatusActionStartMaintenance: {
		from: []CampaignStatus{CampaignStatusActive},
		to:   CampaignStatusMaintenance,
	},
	StatusActionFinishMaintenance: {
		from: []CampaignStatus{CampaignStatusMaintenance},
		to:   CampaignStatusActive,
	},
	StatusActionArchive: {
		from: []CampaignStatus{CampaignStatusEnded},
		to:   CampaignStatusArchived,
	},
}

// ResolveTransition looks up the target status for action from the current
// status. requiresReadiness is true only for leaving draft through publish.
func ResolveTransition(from CampaignStatus, action StatusAction) (to CampaignStatus, requiresReadiness bool, ok bool) {
	transition, exists := statusTransitions[action]
	if !exists {
		return "", false, false
	}
	for _, allowed := range transition.from {
		if allowed == from {
			return transition.to, transition.gated && from == CampaignStatusDraft, true
		}
	}
	return "", false, false
}
