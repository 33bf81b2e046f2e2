package repo

import (
	"fmt"
	"strings"
)

// Name is the repository name, the one field a listing entry cannot do without
type Name struct {
	value string
}

// NewName trims name and rejects blank input
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}
	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

// Topics is the ordered topic list of a repository. Blank entries are dropped.
type Topics struct {
	values []string
}

func NewTopics(topics []string) Topics {
	values := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			values = append(values, t)
		}
	}
	return Topics{values: values}
}

// Slice returns a copy of the topics in their original order
func (t Topics) Slice() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

// Joined is the space-joined form searched by text queries
func (t Topics) Joined() string {
	return strings.Join(t.values, " ")
}

// Counters are the activity numbers GitHub reports for a repository.
// Negative values read as zero.
type Counters struct {
	OpenIssues int
	Stars      int
	Forks      int
}

func NewCounters(openIssues, stars, forks int) Counters {
	return Counters{
		OpenIssues: max(openIssues, 0),
		Stars:      max(stars, 0),
		Forks:      max(forks, 0),
	}
}

// HasActivity reports whether there are open issues
func (c Counters) HasActivity() bool {
	return c.OpenIssues > 0
}
