package entities

import "testing"

func TestResolveTransition(t *testing.T) {
	cases := []struct {
		from    CampaignStatus
		action  StatusAction
		to      CampaignStatus
		gated   bool
		allowed bool
	}{
		{CampaignStatusDraft, StatusActionPublish, CampaignStatusActive, true, true},
		{CampaignStatusScheduled, StatusActionPublish, CampaignStatusActive, false, true},
		{CampaignStatusActive, StatusActionEnd, CampaignStatusEnded, false, true},
		{CampaignStatusEnded, StatusActionReactivate, CampaignStatusActive, false, true},
		{CampaignStatusActive, StatusActionStartMaintenance, CampaignStatusMaintenance, false, true},
		{CampaignStatusMaintenance, StatusActionFinishMaintenance, CampaignStatusActive, false, true},
		{CampaignStatusMaintenance, StatusActionEnd, CampaignStatusEnded, false, true},
		{CampaignStatusEnded, StatusActionArchive, CampaignStatusArchived, false, true},
		{CampaignStatusActive, StatusActionPublish, "", false, false},
		{CampaignStatusDraft, StatusActionEnd, "", false, false},
		{CampaignStatusArchived, StatusActionReactivate, "", false, false},
		{CampaignStatusActive, StatusAction("explode"), "", false, false},
	}
	for _, tc := range cases {
		to, gated, ok := ResolveTransition(tc.from, tc.action)
		if ok != tc.allowed || to != tc.to || gated != tc.gated {
			t.Fatalf("%s via %s: got (%s, %v, %v)", tc.from, tc.action, to, gated, ok)
		}
	}
}
