package models

// FilterFieldKind represents the kind of control a filter field needs
type FilterFieldKind string

const (
	FilterKindText        FilterFieldKind = "text"
	FilterKindMultiSelect FilterFieldKind = "multi_select"
	FilterKindRange       FilterFieldKind = "range"
	FilterKindBoolean     FilterFieldKind = "boolean"
)

// FilterFieldDescriptor describes one filter dimension for a generic
// form builder. Display metadata only; the filter evaluation engine
// does not depend on this schema.
type FilterFieldDescriptor struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Kind    FilterFieldKind `json:"kind"`
	Options []string        `json:"options,omitempty"`
	Min     *float64        `json:"min,omitempty"`
	Max     *float64        `json:"max,omitempty"`
}

// FilterFieldGroup is a labelled group of filter fields
type FilterFieldGroup struct {
	Label  string                  `json:"label"`
	Fields []FilterFieldDescriptor `json:"fields"`
}

// DefaultFilterSchema returns the filter form layout served to clients
func DefaultFilterSchema() []FilterFieldGroup {
	return []FilterFieldGroup{
		{
			Label: "Search",
			Fields: []FilterFieldDescriptor{
				{Key: "search", Label: "Keyword search", Kind: FilterKindText},
			},
		},
		{
			Label: "Venue",
			Fields: []FilterFieldDescriptor{
				{Key: "states", Label: "State", Kind: FilterKindMultiSelect},
				{Key: "courts", Label: "Court", Kind: FilterKindMultiSelect},
				{Key: "judges", Label: "Judge", Kind: FilterKindMultiSelect},
			},
		},
		{
			Label: "Case profile",
			Fields: []FilterFieldDescriptor{
				{Key: "settlement_types", Label: "Settlement type", Kind: FilterKindMultiSelect,
					Options: []string{string(SettlementTypePreliminary), string(SettlementTypeFinal), string(SettlementTypeBoth)}},
				{Key: "class_types", Label: "Class type", Kind: FilterKindMultiSelect},
				{Key: "pii_affected", Label: "PII affected", Kind: FilterKindMultiSelect},
				{Key: "causes_of_breach", Label: "Cause of breach", Kind: FilterKindMultiSelect},
				{Key: "defense_counsel", Label: "Defense counsel", Kind: FilterKindMultiSelect},
				{Key: "plaintiff_counsel", Label: "Plaintiff counsel", Kind: FilterKindMultiSelect},
			},
		},
		{
			Label: "Ranges",
			Fields: []FilterFieldDescriptor{
				{Key: "year_range", Label: "Year", Kind: FilterKindRange},
				{Key: "settlement_amount_range", Label: "Settlement amount", Kind: FilterKindRange},
				{Key: "class_size_range", Label: "Class size", Kind: FilterKindRange},
			},
		},
		{
			Label: "Flags",
			Fields: []FilterFieldDescriptor{
				{Key: "is_multi_district_litigation", Label: "Multi-district litigation", Kind: FilterKindBoolean},
				{Key: "has_minor_subclass", Label: "Minor subclass", Kind: FilterKindBoolean},
				{Key: "credit_monitoring", Label: "Credit monitoring offered", Kind: FilterKindBoolean},
			},
		},
	}
}
