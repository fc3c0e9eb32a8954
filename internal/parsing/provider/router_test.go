package provider

import (
	"context"
	"testing"
	"time"

	"finbook/internal/model"
)

type namedProvider struct{ name string }

func (p namedProvider) Name() string { return p.name }
func (p namedProvider) Parse(context.Context, string, time.Time) (model.FinancialEventsResponse, error) {
	return model.FinancialEventsResponse{}, nil
}

func TestRouter_SameChainForEveryRegion(t *testing.T) {
	router := NewRouter(
		namedProvider{"qwen"},
		namedProvider{"gemini"},
		namedProvider{"openai"},
	)

	regions := []model.Region{
		model.RegionCN, model.RegionUS, model.RegionEU, model.RegionOther,
	}
	for _, region := range regions {
		chain := router.Chain(region)
		if len(chain) != 3 {
			t.Fatalf("Chain(%s) length = %d, want 3", region, len(chain))
		}
		for i, want := range []string{"qwen", "gemini", "openai"} {
			if chain[i].Name() != want {
				t.Errorf("Chain(%s)[%d] = %s, want %s", region, i, chain[i].Name(), want)
			}
		}
	}
}

func TestRouter_SkipsNilProviders(t *testing.T) {
	router := NewRouter(nil, namedProvider{"gemini"}, nil)

	chain := router.Chain(model.RegionOther)
	if len(chain) != 1 || chain[0].Name() != "gemini" {
		t.Fatalf("Chain() = %v, want only gemini", chain)
	}
}

func TestRouter_ProviderLookup(t *testing.T) {
	router := NewRouter(
		namedProvider{"qwen"},
		namedProvider{"gemini"},
	)

	p := router.Provider("gemini")
	if p == nil || p.Name() != "gemini" {
		t.Fatalf("Provider(gemini) = %v, want gemini", p)
	}
	if got := router.Provider("openai"); got != nil {
		t.Errorf("Provider(openai) = %v, want nil", got)
	}
}
