package view

type RecordDownloadRequest struct {
	FileID      string `json:"file_id"`
	BrandID     string `json:"brand_id"`
	SourceType  string `json:"source_type"`
	SourceTitle string `json:"source_title"`
}

type FileDTO struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"size_bytes"`
	Resolved  bool   `json:"resolved"`
}

type LogEventDTO struct {
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type DownloadDTO struct {
	EntryID              string        `json:"entry_id"`
	FileID               string        `json:"file_id"`
	BrandID              string        `json:"brand_id"`
	SourceType           string        `json:"source_type"`
	SourceTitle          string        `json:"source_title"`
	DownloadedAt         string        `json:"downloaded_at"`
	DownloadedBy         string        `json:"downloaded_by"`
	VersionDownloaded    string        `json:"version_downloaded"`
	CurrentVersionStatus string        `json:"current_version_status"`
	Frequency            int           `json:"frequency"`
	CanRecord            bool          `json:"can_record"`
	File                 FileDTO       `json:"file"`
	Logs                 []LogEventDTO `json:"logs"`
}

type DownloadResponse struct {
	Download DownloadDTO `json:"download"`
}

type ListDownloadsResponse struct {
	Items []DownloadDTO `json:"items"`
}

type CanRecordResponse struct {
	FileID    string `json:"file_id"`
	CanRecord bool   `json:"can_record"`
}
