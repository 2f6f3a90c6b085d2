package form

// Texts are the user-facing strings shown by fields and forms.
// The tags match the keys used in configuration files.
type Texts struct {
	Required         string `toml:"required" yaml:"required"`
	SelectAtLeastOne string `toml:"select_at_least_one" yaml:"select_at_least_one"`
	InvalidOption    string `toml:"invalid_option" yaml:"invalid_option"`
	CouldNotConvert  string `toml:"could_not_convert" yaml:"could_not_convert"`
	EditPrompt       string `toml:"edit_prompt" yaml:"edit_prompt"`
	EditSelector     string `toml:"edit_selector" yaml:"edit_selector"`
}

func DefaultTexts() Texts {
	return Texts{
		Required:         "This field is required.",
		SelectAtLeastOne: "Select at least one option.",
		InvalidOption:    "Invalid option.",
		CouldNotConvert:  "Could not convert the value.",
		EditPrompt:       "Do you want to edit something?",
		EditSelector:     "Which item do you want to edit?",
	}
}

// withDefaults fills blank strings from [DefaultTexts].
func (t Texts) withDefaults() Texts {
	def := DefaultTexts()
	fill := func(s *string, fallback string) {
		if len(*s) == 0 {
			*s = fallback
		}
	}
	fill(&t.Required, def.Required)
	fill(&t.SelectAtLeastOne, def.SelectAtLeastOne)
	fill(&t.InvalidOption, def.InvalidOption)
	fill(&t.CouldNotConvert, def.CouldNotConvert)
	fill(&t.EditPrompt, def.EditPrompt)
	fill(&t.EditSelector, def.EditSelector)
	return t
}
