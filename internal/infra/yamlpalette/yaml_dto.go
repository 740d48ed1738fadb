package yamlpalette

// yamlDocument only decodes palettes; organization and other keys are ignored.
type yamlDocument struct {
	Palettes *[]yamlPalette `yaml:"palettes"`
}

type yamlPalette struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	Colors      []yamlColor `yaml:"colors"`
}

type yamlColor struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}
