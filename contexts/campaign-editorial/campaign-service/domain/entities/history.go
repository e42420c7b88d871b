package entities

import "time"

type StateHistory struct {
	HistoryID    string
	CampaignID   string
	Action       StatusAction
	FromState    CampaignStatus
	ToState      CampaignStatus
	ChangedBy    string
	ChangeReason string
	CreatedAt    time.Time
}
