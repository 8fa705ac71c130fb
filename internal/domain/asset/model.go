package asset

import "time"

// Asset represents a purchasable marketplace item: a scan, environment,
// motion-capture pack or media collection.
type Asset struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Price       int64     `json:"price"`
	CreditCost  int       `json:"creditCost"`
	PreviewURL  string    `json:"previewUrl,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	FileSize    int64     `json:"fileSize"`
	FileFormat  string    `json:"fileFormat,omitempty"`
	License     string    `json:"license,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}
