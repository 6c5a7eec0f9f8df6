package model

import (
	"gopkg.in/yaml.v2"
)

// UnmarshalSite reads a full site tree from its YAML manifest form.
func UnmarshalSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// MarshalSite renders a site tree as a YAML manifest.
func MarshalSite(site *Site) ([]byte, error) {
	return yaml.Marshal(site)
}
