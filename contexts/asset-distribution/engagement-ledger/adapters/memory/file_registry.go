package memory

import (
	"context"
	"strings"
	"sync"

	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"
)

// FileRegistry is a map-backed catalog of downloadable files.
type FileRegistry struct {
	mu    sync.RWMutex
	files map[string]entities.FileMetadata
}

func NewFileRegistry(seed []entities.FileMetadata) *FileRegistry {
	files := make(map[string]entities.FileMetadata, len(seed))
	for _, item := range seed {
		files[item.FileID] = item
	}
	return &FileRegistry{files: files}
}

func (r *FileRegistry) GetFile(_ context.Context, fileID string) (entities.FileMetadata, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.files[strings.TrimSpace(fileID)]
	return item, exists, nil
}

func (r *FileRegistry) PutFile(item entities.FileMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[item.FileID] = item
}

func (r *FileRegistry) RemoveFile(fileID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.files, strings.TrimSpace(fileID))
}
