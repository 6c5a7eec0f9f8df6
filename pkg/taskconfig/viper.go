package taskconfig

import (
	"strings"

	"github.com/spf13/viper"
)

// ViperProperties adapts a viper instance to the Properties interface.
// Note that viper holds its keys lowercased, so module, task and option
// names surface case-insensitively through this adapter.
type ViperProperties struct {
	v *viper.Viper
}

// NewViperProperties wraps a viper instance; passing nil wraps the global
// one.
func NewViperProperties(v *viper.Viper) *ViperProperties {
	if v == nil {
		v = viper.GetViper()
	}
	return &ViperProperties{v: v}
}

// Keys lists the viper keys under the module namespace.
func (p *ViperProperties) Keys(module string) []string {
	prefix := strings.ToLower(module) + "."
	var keys []string
	for _, key := range p.v.AllKeys() {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Value reads one key as a raw string.
func (p *ViperProperties) Value(key string) string {
	return p.v.GetString(key)
}
