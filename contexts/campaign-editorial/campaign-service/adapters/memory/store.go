package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brandbridge/contexts/campaign-editorial/campaign-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/campaign-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/campaign-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	campaigns map[string]entities.Campaign
	stateLog  []entities.StateHistory
}

func NewStore(seed []entities.Campaign) *Store {
	campaigns := make(map[string]entities.Campaign, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = cloneCampaign(item)
	}
	return &Store{
		campaigns: campaigns,
		stateLog:  make([]entities.StateHistory, 0),
	}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrCampaignAlreadyExists
	}
	s.campaigns[campaign.CampaignID] = cloneCampaign(campaign)
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.campaigns[campaign.CampaignID] = cloneCampaign(campaign)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return cloneCampaign(item), nil
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		if strings.TrimSpace(filter.BrandID) != "" && campaign.BrandID != strings.TrimSpace(filter.BrandID) {
			continue
		}
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		items = append(items, cloneCampaign(campaign))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CampaignID < items[j].CampaignID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) AppendState(_ context.Context, item entities.StateHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateLog = append(s.stateLog, item)
	return nil
}

func (s *Store) ListStates(_ context.Context, campaignID string) ([]entities.StateHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StateHistory, 0)
	for _, item := range s.stateLog {
		if item.CampaignID == campaignID {
			items = append(items, item)
		}
	}
	return items, nil
}

// cloneCampaign detaches slices and maps so callers cannot mutate stored state.
func cloneCampaign(c entities.Campaign) entities.Campaign {
	c.AssetRefs = append([]string(nil), c.AssetRefs...)
	c.TemplateRefs = append([]string(nil), c.TemplateRefs...)
	if c.RetailerUsage != nil {
		usage := make(map[string]bool, len(c.RetailerUsage))
		for channel, used := range c.RetailerUsage {
			usage[channel] = used
		}
		c.RetailerUsage = usage
	}
	return c
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
