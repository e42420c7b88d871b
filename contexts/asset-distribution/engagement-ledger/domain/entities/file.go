package entities

// FileMetadata is what the file registry knows about a downloadable asset.
type FileMetadata struct {
	FileID    string
	BrandID   string
	Name      string
	Type      string
	SizeBytes int64
}

// UnknownFile stands in for files the registry no longer resolves.
func UnknownFile(fileID string) FileMetadata {
	return FileMetadata{
		FileID:    fileID,
		Name:      "Unknown File",
		Type:      "unknown",
		SizeBytes: 0,
	}
}
