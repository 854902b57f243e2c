package models

import "time"

// ExternalLink is a titled link to an outside resource attached to a module
type ExternalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Module represents a learning module with markdown content and metadata
type Module struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Content       string         `json:"content"`
	Slug          string         `json:"slug"`
	VideoURL      string         `json:"videoUrl,omitempty"`
	ExternalLinks []ExternalLink `json:"externalLinks,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// ModuleDetail represents a module together with its activities
type ModuleDetail struct {
	Module
	Activities []Activity `json:"activities"`
}
