package model

// ChannelStatistics represents the public statistics and snippet of a channel.
// Counters missing from the upstream payload decode as 0.
type ChannelStatistics struct {
	SubscriberCount uint64            `json:"subscriberCount"`
	ViewCount       uint64            `json:"viewCount"`
	VideoCount      uint64            `json:"videoCount"`
	Title           string            `json:"title,omitempty"`
	Thumbnails      map[string]string `json:"thumbnails"` // size name -> URL, never nil
	CustomURL       string            `json:"customUrl,omitempty"`
	Description     string            `json:"description,omitempty"`
}

// VideoSummary represents a condensed video record.
// ViewCount is only set for popularity-ranked results and demo data.
type VideoSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	ViewCount   *uint64 `json:"viewCount,omitempty"`
}

// Credential is a snapshot of the upstream API credential taken at request time.
type Credential struct {
	APIKey string
	// ForceFallback disables live calls even when an API key is present.
	ForceFallback bool
}

// HasCredential reports whether live upstream calls are possible.
func (c Credential) HasCredential() bool {
	return c.APIKey != "" && !c.ForceFallback
}
