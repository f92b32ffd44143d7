package models

// KBValue is a knowledge base entry: either a single advisory string
// or an ordered list of advice bullet points. Bullet order is display
// order.
type KBValue struct {
	Text    string   `yaml:"text,omitempty" json:"text,omitempty"`
	Bullets []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
}

// IsEmpty reports whether the value carries no content. Empty override
// values never replace defaults during the knowledge base merge.
func (v KBValue) IsEmpty() bool {
	return v.Text == "" && len(v.Bullets) == 0
}
