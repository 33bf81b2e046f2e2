package dto

// CacheRecord is the serialized form of the cache entry. Timestamps are unix
// milliseconds.
type CacheRecord struct {
	Repositories []*RepositoryResponse `json:"repositories"`
	Timestamp    int64                 `json:"timestamp"`
	ExpiresAt    int64                 `json:"expiresAt"`
	Version      string                `json:"version"`
}
