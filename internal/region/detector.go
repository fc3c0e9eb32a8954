package region

import (
	"context"
	"strings"

	"finbook/internal/model"
)

// Detect resolves the user's region. Priority:
//  1. country stored on the user record
//  2. X-Region header value
//  3. RegionOther
//
// Resolutions from the stored country are cached per user.
func (d *implDetector) Detect(ctx context.Context, sc model.Scope, headerRegion string) model.Region {
	if sc.UserID != "" {
		if cached, ok := d.cache.Get(sc.UserID); ok {
			return cached
		}

		country, err := d.store.GetUserCountry(ctx, sc.UserID)
		if err != nil {
			d.l.Warnf(ctx, "region.Detect: country lookup failed for user %s: %v", sc.UserID, err)
		} else if country != "" {
			r := regionForCountry(country)
			d.cache.Add(sc.UserID, r)
			return r
		}
	}

	if headerRegion != "" {
		r := model.Region(strings.ToUpper(strings.TrimSpace(headerRegion)))
		if _, ok := knownRegions[r]; ok {
			return r
		}
	}

	return model.RegionOther
}

func regionForCountry(country string) model.Region {
	code := strings.ToUpper(strings.TrimSpace(country))
	if r, ok := countryRegions[code]; ok {
		return r
	}
	if _, ok := euCountries[code]; ok {
		return model.RegionEU
	}
	return model.RegionOther
}
