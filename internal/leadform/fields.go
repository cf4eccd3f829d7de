package leadform

// Field names a form input. The string value doubles as the JSON key of the
// submission payload and the HTML input name.
type Field string

const (
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldCompany   Field = "company"
	FieldIndustry  Field = "industry"
	FieldFleetSize Field = "fleetSize"
	FieldMessage   Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldIndustry,
	FieldFleetSize,
	FieldMessage,
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Industry is one of the fixed industry choices.
type Industry string

const (
	IndustryCement     Industry = "cement"
	IndustrySteel      Industry = "steel"
	IndustryFMCG       Industry = "fmcg"
	IndustryAutomotive Industry = "automotive"
	IndustryChemicals  Industry = "chemicals"
	IndustryTextiles   Industry = "textiles"
	IndustryOther      Industry = "other"
)

// IndustryOptions lists the industries in the order the selects show them.
var IndustryOptions = []Option{
	{Value: string(IndustryCement), Label: "Cement & Construction"},
	{Value: string(IndustrySteel), Label: "Steel & Manufacturing"},
	{Value: string(IndustryFMCG), Label: "FMCG & Consumer Goods"},
	{Value: string(IndustryAutomotive), Label: "Automotive"},
	{Value: string(IndustryChemicals), Label: "Chemicals"},
	{Value: string(IndustryTextiles), Label: "Textiles & Apparel"},
	{Value: string(IndustryOther), Label: "Other"},
}

// FleetSize is one of the fixed fleet size buckets.
type FleetSize string

const (
	FleetSize1To10   FleetSize = "1-10"
	FleetSize11To50  FleetSize = "11-50"
	FleetSize51To100 FleetSize = "51-100"
	FleetSizeOver100 FleetSize = "100+"
)

// FleetSizeOptions lists the fleet size buckets in ascending order.
var FleetSizeOptions = []Option{
	{Value: string(FleetSize1To10), Label: "1-10 vehicles"},
	{Value: string(FleetSize11To50), Label: "11-50 vehicles"},
	{Value: string(FleetSize51To100), Label: "51-100 vehicles"},
	{Value: string(FleetSizeOver100), Label: "100+ vehicles"},
}

// LabelFor returns the display label for value, or value itself when it is
// not part of opts.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
