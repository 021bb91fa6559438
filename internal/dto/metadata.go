package dto

// LineRecord is the typed view of one description line.
// It uses "mapstructure" tags to match the lower-cased keys of the line.
type LineRecord struct {
	From  string `mapstructure:"from"`
	Read  string `mapstructure:"read"`
	Write string `mapstructure:"write"`
	Goto  string `mapstructure:"goto"`
	Move  string `mapstructure:"move"`

	Start       string `mapstructure:"start"`
	EmptySymbol string `mapstructure:"empty_symbol"`

	// Remain collects every other key of the line.
	Remain map[string]any `mapstructure:",remain"`
}

// IsTransition reports whether every transition key carries a value.
func (r LineRecord) IsTransition() bool {
	return r.From != "" && r.Read != "" && r.Write != "" && r.Goto != "" && r.Move != ""
}

// IsParams reports whether the line sets a machine parameter.
func (r LineRecord) IsParams() bool {
	return r.Start != "" || r.EmptySymbol != ""
}
