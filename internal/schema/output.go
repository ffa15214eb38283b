package schema

// Column names of the flag lookup output, in file order.
const (
	OutChar          = "char"
	OutName          = "name"
	OutRegionName    = "region_name"
	OutSubRegionName = "sub_region_name"
	OutAlpha2        = ColAlpha2
	OutAlpha3        = ColAlpha3
	OutTLD           = "tld"
)

// OutputFieldSpecs defines the flag lookup columns in output order.
var OutputFieldSpecs = []FieldSpec{
	{Name: OutChar, Type: FieldText, Required: true},
	{Name: OutName, Type: FieldText, Required: true},
	{Name: OutRegionName, Type: FieldText, Required: true, Nullable: true},
	{Name: OutSubRegionName, Type: FieldText, Required: true, Nullable: true},
	{Name: OutAlpha2, DBColumn: "alpha2", Type: FieldCode, Required: true, Nullable: true},
	{Name: OutAlpha3, DBColumn: "alpha3", Type: FieldCode, Required: true, Nullable: true},
	{Name: OutTLD, Type: FieldDomain, Required: true, Nullable: true},
}

// OutputHeader returns the output column names in file order.
func OutputHeader() []string {
	return Names(OutputFieldSpecs)
}
