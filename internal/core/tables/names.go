package tables

import "strings"

// CodePair is an alpha-2 / alpha-3 code pair.
type CodePair struct {
	Alpha2 string
	Alpha3 string
}

// nameCodes maps lowercase emoji country names to their code pair.
var nameCodes = map[string]CodePair{
	"south korea":                              {"KR", "KOR"},
	"north korea":                              {"KP", "PRK"},
	"united states":                            {"US", "USA"},
	"united kingdom":                           {"GB", "GBR"},
	"united arab emirates":                     {"AE", "ARE"},
	"russia":                                   {"RU", "RUS"},
	"united nations":                           {"UN", "UNK"},
	"european union":                           {"EU", "EUN"},
	"saint vincent and grenadines":             {"VC", "VCT"},
	"heard and mcdonald islands":               {"HM", "HMD"},
	"south georgia and south sandwich islands": {"GS", "SGS"},
	"u.s. outlying islands":                    {"UM", "UMI"},
	"u.s. virgin islands":                      {"VI", "VIR"},
	"british virgin islands":                   {"VG", "VGB"},
	"falkland islands":                         {"FK", "FLK"},
	"vatican city":                             {"VA", "VAT"},
	"diego garcia":                             {"DG", "DGA"},
	"ascension island":                         {"AC", "ASC"},
	"tristan da cunha":                         {"TA", "TAC"},
	"são tomé and príncipe":                    {"ST", "STP"},
	"caribbean netherlands":                    {"BQ", "BES"},
	"pitcairn islands":                         {"PN", "PCN"},
	"clipperton island":                        {"CP", "CPT"},
	"côte d’ivoire":                            {"CI", "CIV"},

	// Not ISO-3166-1 entities
	"kosovo":                  {"XK", "XKX"},
	"palestinian territories": {"PS", "PSE"},
	"wales":                   {"GB-WLS", "GBW"},
	"scotland":                {"GB-SCT", "GBS"},
	"england":                 {"GB-ENG", "GBE"},
	"northern ireland":        {"GB-NIR", "GBN"},
	"hong kong sar china":     {"HK", "HKG"},
	"macao sar china":         {"MO", "MAC"},
	"ceuta and melilla":       {"ES-CE", "ESM"},
	"canary islands":          {"ES-CN", "CNY"},
}

// LookupName returns the code pair for an already-normalized lowercase name.
func LookupName(name string) (CodePair, bool) {
	pair, ok := nameCodes[strings.ToLower(name)]
	return pair, ok
}

// NameCount returns the number of name exceptions.
func NameCount() int {
	return len(nameCodes)
}
