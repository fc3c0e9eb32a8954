package region

import "finbook/internal/model"

// euCountries are the ISO 3166-1 alpha-2 codes mapped to RegionEU.
var euCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {},
	"DK": {}, "EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {},
	"HU": {}, "IE": {}, "IT": {}, "LV": {}, "LT": {}, "LU": {},
	"MT": {}, "NL": {}, "PL": {}, "PT": {}, "RO": {}, "SK": {},
	"SI": {}, "ES": {}, "SE": {},
}

// countryRegions maps country codes with a dedicated region.
var countryRegions = map[string]model.Region{
	"CN": model.RegionCN,
	"HK": model.RegionHK,
	"MO": model.RegionMO,
	"TW": model.RegionTW,
	"US": model.RegionUS,
	"CA": model.RegionCA,
}

// knownRegions validates X-Region header values.
var knownRegions = map[model.Region]struct{}{
	model.RegionCN:    {},
	model.RegionHK:    {},
	model.RegionMO:    {},
	model.RegionTW:    {},
	model.RegionUS:    {},
	model.RegionCA:    {},
	model.RegionEU:    {},
	model.RegionOther: {},
}
