package entities

import "strings"

type ReadinessItemKey string

const (
	ReadinessHasContent  ReadinessItemKey = "has_content"
	ReadinessHasAudience ReadinessItemKey = "has_audience"
	ReadinessHasCover    ReadinessItemKey = "has_cover"
	ReadinessHasValidity ReadinessItemKey = "has_validity"
)

type ReadinessItem struct {
	Key   ReadinessItemKey
	Label string
	Done  bool
}

type Readiness struct {
	Items   []ReadinessItem
	IsReady bool
}

// Missing lists the keys of the incomplete items in checklist order.
func (r Readiness) Missing() []ReadinessItemKey {
	missing := make([]ReadinessItemKey, 0, len(r.Items))
	for _, item := range r.Items {
		if !item.Done {
			missing = append(missing, item.Key)
		}
	}
	return missing
}

// EvaluateReadiness builds the publish checklist for a campaign.
func EvaluateReadiness(campaign Campaign) Readiness {
	audience := strings.TrimSpace(campaign.Audience)
	items := []ReadinessItem{
		{
			Key:   ReadinessHasContent,
			Label: "Add at least one asset or template",
			Done:  len(campaign.AssetRefs) > 0 || len(campaign.TemplateRefs) > 0,
		},
		{
			Key:   ReadinessHasAudience,
			Label: "Choose a target audience",
			Done:  audience != "" && !strings.EqualFold(audience, AudienceUnspecified),
		},
		{
			Key:   ReadinessHasCover,
			Label: "Upload a cover image",
			Done:  strings.TrimSpace(campaign.CoverImage) != "",
		},
		{
			Key:   ReadinessHasValidity,
			Label: "Set start and end dates",
			Done:  strings.TrimSpace(campaign.StartDate) != "" && strings.TrimSpace(campaign.EndDate) != "",
		},
	}

	ready := true
	for _, item := range items {
		ready = ready && item.Done
	}
	return Readiness{Items: items, IsReady: ready}
}
