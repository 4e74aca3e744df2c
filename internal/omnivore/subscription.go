// Package omnivore provides the GraphQL client for the Omnivore API and
// the subscription model mapped from its responses.
package omnivore

import "time"

// Subscription is one feed subscription as returned by the Omnivore API.
// Every field except Name is optional; pointer fields are nil when the
// API omitted them. Records are immutable after mapping: later pipeline
// stages select and partition, never mutate.
type Subscription struct {
	Name             string     `json:"name"`
	URL              string     `json:"url,omitempty"`
	Folder           string     `json:"folder,omitempty"`
	Description      string     `json:"description,omitempty"`
	NewsletterEmail  string     `json:"newsletterEmail,omitempty"`
	Icon             string     `json:"icon,omitempty"`
	Count            *int64     `json:"count,omitempty"`
	IsPrivate        *bool      `json:"isPrivate,omitempty"`
	AutoAddToLibrary *bool      `json:"autoAddToLibrary,omitempty"`
	FetchContent     *bool      `json:"fetchContent,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	LastFetchedAt    *time.Time `json:"lastFetchedAt,omitempty"`
	RefreshedAt      *time.Time `json:"refreshedAt,omitempty"`
	FailedAt         *time.Time `json:"failedAt,omitempty"`
}
