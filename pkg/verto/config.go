package verto

// ConfigYAML renders the effective configuration.
func (v *realVerto) ConfigYAML() ([]byte, error) {
	return v.state.Config.YAML()
}
