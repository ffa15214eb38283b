package tables

import "strings"

// alpha2TLDs maps lowercase alpha-2 (or subdivision) codes to their TLD.
var alpha2TLDs = map[string]string{
	"xk":     ".xk",
	"ps":     ".ps",
	"gb-wls": ".wales",
	"gb-sct": ".scotland",
	"gb-eng": ".england",
	"gb-nir": ".northernireland",
	"es-ce":  ".es",
	"hk":     ".hk",
	"mo":     ".mo",
	"ta":     ".ta",
	"un":     ".un",
	"eu":     ".eu",
	"ac":     ".ac",
	"dg":     ".dg",
	"cp":     ".cp",
}

// LookupTLD returns the TLD for an alpha-2 code, any case.
func LookupTLD(alpha2 string) (string, bool) {
	tld, ok := alpha2TLDs[strings.ToLower(alpha2)]
	return tld, ok
}
