package loam

// MachineMetadata represents the frontmatter of a machine file.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type MachineMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`

	// Tape is the initial tape text, symbols separated by whitespace.
	Tape string `json:"tape" mapstructure:"tape"`

	// Start and EmptySymbol become parameter lines ahead of the body, so
	// parameter lines in the body still take precedence.
	Start       string `json:"start" mapstructure:"start"`
	EmptySymbol string `json:"empty_symbol" mapstructure:"empty_symbol"`
}
