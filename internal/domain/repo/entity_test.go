package repo_test

import (
	"errors"
	"testing"
	"time"

	"repo-catalog/internal/domain/repo"
)

func TestNewRepository(t *testing.T) {
	tests := []struct {
		name    string
		attrs   repo.Attributes
		wantErr bool
	}{
		{
			name: "valid repository",
			attrs: repo.Attributes{
				ID:       12345,
				Name:     "azerothcore-wotlk",
				FullName: "azerothcore/azerothcore-wotlk",
				HTMLURL:  "https://github.com/azerothcore/azerothcore-wotlk",
			},
			wantErr: false,
		},
		{
			name:    "name description and topics only",
			attrs:   repo.Attributes{Name: "mod-eluna", Description: "Lua", Topics: []string{"lua"}},
			wantErr: false,
		},
		{
			name:    "relative url is kept as is",
			attrs:   repo.Attributes{Name: "mod-eluna", HTMLURL: "azerothcore/mod-eluna"},
			wantErr: false,
		},
		{
			name:    "long name",
			attrs:   repo.Attributes{Name: "mod-" + stringOf('x', 150)},
			wantErr: false,
		},
		{
			name:    "empty name",
			attrs:   repo.Attributes{ID: 12345, Name: ""},
			wantErr: true,
		},
		{
			name:    "blank name",
			attrs:   repo.Attributes{ID: 12345, Name: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := repo.NewRepository(tt.attrs)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRepository() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var domainErr *repo.DomainError
				if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeInvalidRepositoryData {
					t.Errorf("NewRepository() error = %v, want INVALID_REPOSITORY_DATA", err)
				}
				return
			}
			got := repository.Attributes()
			if got.Name != tt.attrs.Name {
				t.Errorf("Name = %v, want %v", got.Name, tt.attrs.Name)
			}
			if got.HTMLURL != tt.attrs.HTMLURL {
				t.Errorf("HTMLURL = %v, want %v", got.HTMLURL, tt.attrs.HTMLURL)
			}
		})
	}
}

func stringOf(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

func TestNegativeCountersReadAsZero(t *testing.T) {
	repository, err := repo.NewRepository(repo.Attributes{
		Name:            "mod-eluna",
		OpenIssuesCount: -1,
		StargazersCount: -5,
		ForksCount:      2,
	})
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	got := repository.Attributes()
	if got.OpenIssuesCount != 0 || got.StargazersCount != 0 || got.ForksCount != 2 {
		t.Errorf("counters = %d/%d/%d, want 0/0/2", got.OpenIssuesCount, got.StargazersCount, got.ForksCount)
	}
	if repository.HasActivity() {
		t.Error("negative open issues should not count as activity")
	}
}

func TestRepositoryAttributesRoundTrip(t *testing.T) {
	attrs := repo.Attributes{
		ID:              42,
		Name:            "mod-eluna",
		FullName:        "azerothcore/mod-eluna",
		Description:     "Lua engine",
		HTMLURL:         "https://github.com/azerothcore/mod-eluna",
		Topics:          []string{"lua", "module"},
		Language:        "C++",
		OpenIssuesCount: 7,
		StargazersCount: 120,
		ForksCount:      30,
		Archived:        true,
		UpdatedAt:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	repository, err := repo.NewRepository(attrs)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	got := repository.Attributes()
	if got.ID != attrs.ID || got.Name != attrs.Name || got.Description != attrs.Description || got.FullName != attrs.FullName {
		t.Errorf("Attributes() = %+v, want %+v", got, attrs)
	}
	if got.OpenIssuesCount != 7 || got.StargazersCount != 120 || got.ForksCount != 30 {
		t.Errorf("counters = %d/%d/%d", got.OpenIssuesCount, got.StargazersCount, got.ForksCount)
	}
	if !got.Archived || !got.UpdatedAt.Equal(attrs.UpdatedAt) {
		t.Errorf("Archived/UpdatedAt not preserved: %+v", got)
	}
	if len(got.Topics) != 2 || got.Topics[0] != "lua" || got.Topics[1] != "module" {
		t.Errorf("Topics = %v", got.Topics)
	}
}

func TestRepositoryIsImmutable(t *testing.T) {
	topics := []string{"lua"}
	repository, err := repo.NewRepository(repo.Attributes{ID: 1, Name: "mod-eluna", Topics: topics})
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	topics[0] = "changed"
	if repository.Attributes().Topics[0] != "lua" {
		t.Error("mutating the input slice should not affect the entity")
	}

	got := repository.Attributes().Topics
	got[0] = "changed"
	if repository.Attributes().Topics[0] != "lua" {
		t.Error("mutating the returned slice should not affect the entity")
	}
}

func TestHasActivity(t *testing.T) {
	idle, _ := repo.NewRepository(repo.Attributes{ID: 1, Name: "idle"})
	busy, _ := repo.NewRepository(repo.Attributes{ID: 2, Name: "busy", OpenIssuesCount: 3})

	if idle.HasActivity() {
		t.Error("repository without open issues should not have activity")
	}
	if !busy.HasActivity() {
		t.Error("repository with open issues should have activity")
	}
}

func TestSearchText(t *testing.T) {
	repository, _ := repo.NewRepository(repo.Attributes{
		ID:          1,
		Name:        "Mod-Eluna",
		Description: "LUA Engine",
		Topics:      []string{"Scripting", "wow"},
	})

	got := repository.SearchText()
	want := []string{"mod-eluna", "lua engine", "scripting wow"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchText()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
