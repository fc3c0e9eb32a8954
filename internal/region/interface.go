package region

import (
	"context"

	"finbook/internal/model"
)

//go:generate mockery --name Detector
type Detector interface {
	// Detect resolves the region for the given user. The header value is
	// the X-Region header from the request, which is used as a fallback
	// when the user has no stored country. Detection never fails: any
	// lookup error degrades to RegionOther.
	Detect(ctx context.Context, sc model.Scope, headerRegion string) model.Region
}

//go:generate mockery --name CountryStore
type CountryStore interface {
	// GetUserCountry returns the ISO 3166-1 alpha-2 country code stored
	// for the user, or an empty string when unknown.
	GetUserCountry(ctx context.Context, userID string) (string, error)
}
