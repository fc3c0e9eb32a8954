package region

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"finbook/internal/model"
	"finbook/pkg/log"
)

// implDetector is the private implementation of Detector.
type implDetector struct {
	store CountryStore
	cache *lru.Cache[string, model.Region]
	l     log.Logger
}

// New creates a new region Detector. cacheSize caps the number of
// per-user resolutions kept in memory.
func New(l log.Logger, store CountryStore, cacheSize int) (*implDetector, error) {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, model.Region](cacheSize)
	if err != nil {
		return nil, err
	}

	return &implDetector{
		store: store,
		cache: cache,
		l:     l,
	}, nil
}
