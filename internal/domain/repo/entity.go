package repo

import (
	"fmt"
	"strings"
	"time"
)

// Repository is a domain entity representing one repository of the organization.
// It is immutable once built. Only the name is required; everything else the
// listing omits stays at its zero value.
type Repository struct {
	id          int64
	name        Name
	fullName    string
	description string
	htmlURL     string
	topics      Topics
	language    string
	counters    Counters
	archived    bool
	updatedAt   time.Time
}

// Attributes is the plain data a Repository is built from and flattened to
type Attributes struct {
	ID              int64
	Name            string
	FullName        string
	Description     string
	HTMLURL         string
	Topics          []string
	Language        string
	OpenIssuesCount int
	StargazersCount int
	ForksCount      int
	Archived        bool
	UpdatedAt       time.Time
}

// NewRepository creates a Repository entity. It fails only when the name is missing.
func NewRepository(attrs Attributes) (*Repository, error) {
	name, err := NewName(attrs.Name)
	if err != nil {
		return nil, ErrInvalidRepositoryData("name", err)
	}

	return &Repository{
		id:          attrs.ID,
		name:        name,
		fullName:    attrs.FullName,
		description: attrs.Description,
		htmlURL:     strings.TrimSpace(attrs.HTMLURL),
		topics:      NewTopics(attrs.Topics),
		language:    attrs.Language,
		counters:    NewCounters(attrs.OpenIssuesCount, attrs.StargazersCount, attrs.ForksCount),
		archived:    attrs.Archived,
		updatedAt:   attrs.UpdatedAt,
	}, nil
}

// Attributes flattens the entity back to plain data
func (r *Repository) Attributes() Attributes {
	return Attributes{
		ID:              r.id,
		Name:            r.name.String(),
		FullName:        r.fullName,
		Description:     r.description,
		HTMLURL:         r.htmlURL,
		Topics:          r.topics.Slice(),
		Language:        r.language,
		OpenIssuesCount: r.counters.OpenIssues,
		StargazersCount: r.counters.Stars,
		ForksCount:      r.counters.Forks,
		Archived:        r.archived,
		UpdatedAt:       r.updatedAt,
	}
}

// HasActivity reports whether the repository has open issues
func (r *Repository) HasActivity() bool {
	return r.counters.HasActivity()
}

// SearchText is the lower-cased text a search query is matched against:
// name, description and the space-joined topics.
func (r *Repository) SearchText() []string {
	return []string{
		strings.ToLower(r.name.String()),
		strings.ToLower(r.description),
		strings.ToLower(r.topics.Joined()),
	}
}

// Getters

func (r *Repository) Name() Name {
	return r.name
}

func (r *Repository) OpenIssuesCount() int {
	return r.counters.OpenIssues
}

func (r *Repository) StargazersCount() int {
	return r.counters.Stars
}

func (r *Repository) ForksCount() int {
	return r.counters.Forks
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{id: %d, name: %s, openIssues: %d}",
		r.id, r.name.String(), r.counters.OpenIssues)
}
