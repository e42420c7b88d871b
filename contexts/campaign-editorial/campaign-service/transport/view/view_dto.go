package view

type CreateCampaignRequest struct {
	Title         string          `json:"title"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Audience      string          `json:"audience"`
	CoverImage    string          `json:"cover_image"`
	AssetRefs     []string        `json:"asset_refs"`
	TemplateRefs  []string        `json:"template_refs"`
	IsPinned      bool            `json:"is_pinned"`
	RetailerUsage map[string]bool `json:"retailer_usage,omitempty"`
	Schedule      bool            `json:"schedule"`
}

type UpdateCampaignRequest struct {
	Title         *string         `json:"title"`
	StartDate     *string         `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	Audience      *string         `json:"audience"`
	CoverImage    *string         `json:"cover_image"`
	AssetRefs     *[]string       `json:"asset_refs"`
	TemplateRefs  *[]string       `json:"template_refs"`
	IsPinned      *bool           `json:"is_pinned"`
	RetailerUsage map[string]bool `json:"retailer_usage,omitempty"`
}

type StatusActionRequest struct {
	Reason string `json:"reason"`
}

type ReadinessItemDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type ReadinessDTO struct {
	Items   []ReadinessItemDTO `json:"items"`
	IsReady bool               `json:"is_ready"`
}

type CampaignDTO struct {
	CampaignID    string          `json:"campaign_id"`
	BrandID       string          `json:"brand_id"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	Phase         string          `json:"phase"`
	IsNew         bool            `json:"is_new"`
	IsUpdated     bool            `json:"is_updated"`
	DaysLeft      *int            `json:"days_left,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Audience      string          `json:"audience"`
	CoverImage    string          `json:"cover_image"`
	AssetRefs     []string        `json:"asset_refs"`
	TemplateRefs  []string        `json:"template_refs"`
	IsPinned      bool            `json:"is_pinned"`
	UpdatePending bool            `json:"update_pending"`
	RetailerUsage map[string]bool `json:"retailer_usage,omitempty"`
	Readiness     ReadinessDTO    `json:"readiness"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	PublishedAt   string          `json:"published_at,omitempty"`
	EndedAt       string          `json:"ended_at,omitempty"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}

type StateHistoryDTO struct {
	Action     string `json:"action"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type HistoryResponse struct {
	Items []StateHistoryDTO `json:"items"`
}
