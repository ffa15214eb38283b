package schema

// Column names of the datasets/country-codes reference table consulted by
// the resolver and enricher.
const (
	ColAlpha2       = "ISO3166-1-Alpha-2"
	ColAlpha3       = "ISO3166-1-Alpha-3"
	ColShortName    = "UNTERM English Short"
	ColCurrencyName = "ISO4217-currency_country_name"
	ColCLDRName     = "CLDR display name"
	ColRegion       = "Region Name"
	ColSubRegion    = "Sub-region Name"
	ColTLD          = "TLD"
)

// CountryCodesFieldSpecs lists the reference table columns the pipeline
// reads. The source file carries many more; they are kept but unused.
var CountryCodesFieldSpecs = []FieldSpec{
	{Name: ColAlpha2, Type: FieldCode, Required: true},
	{Name: ColAlpha3, Type: FieldCode, Required: true},
	{Name: ColShortName, Type: FieldText, Required: true},
	{Name: ColCurrencyName, Type: FieldText, Required: true},
	{Name: ColCLDRName, Type: FieldText, Required: true},
	{Name: ColRegion, Type: FieldText, Required: true},
	{Name: ColSubRegion, Type: FieldText, Required: true},
	{Name: ColTLD, Type: FieldDomain, Required: true},
}
