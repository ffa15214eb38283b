package tables

import "strings"

// RegionPair is a region / sub-region name pair.
type RegionPair struct {
	Region    string
	SubRegion string
}

// alpha3Regions maps lowercase alpha-3 codes to their region pair.
var alpha3Regions = map[string]RegionPair{
	"xkx": {"Europe", "Western Europe"},
	"pse": {"Asia", "Western Asia"},
	"gbw": {"Europe", "Northern Europe"},
	"gbs": {"Europe", "Northern Europe"},
	"gbe": {"Europe", "Northern Europe"},
	"gbn": {"Europe", "Northern Europe"},
	"hkg": {"Asia", "Eastern Asia"},
	"mac": {"Asia", "Eastern Asia"},
	"tac": {"Africa", "Sub-Saharan Africa"},
	"dga": {"Africa", "Sub-Saharan Africa"},
	"cpt": {"North America", "Caribbean"},
	"cny": {"Europe", "Southern Europe"},
	"asc": {"Africa", "Sub-Saharan Africa"},
	"unk": {"Global", "Global"},
	"eun": {"Europe", "Northern Europe"},
	"ata": {"Antarctica", "Antarctica"},
	"esm": {"Europe", "Southern Europe"},
}

// LookupRegion returns the region pair for an alpha-3 code, any case.
func LookupRegion(alpha3 string) (RegionPair, bool) {
	pair, ok := alpha3Regions[strings.ToLower(alpha3)]
	return pair, ok
}
