package pack

import (
	"github.com/openarchive/aipkit/pkg/plugin"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option is a functor to build a packer with some options
type Option func(*Packer)

// Codecs defines the registry the packer resolves its disseminator and
// ingester from
func Codecs(r *plugin.Registry) Option {
	return func(p *Packer) {
		p.codecs = r
	}
}

// Filter configures the bundle content filter from its expression
func Filter(expr string) Option {
	return func(p *Packer) {
		p.SetContentFilter(expr)
	}
}

// Filesystem defines the file system the packer checks archives against
func Filesystem(fs afero.Fs) Option {
	return func(p *Packer) {
		p.fs = fs
	}
}

// Logger injects a logging facility into packer operations
func Logger(l *zap.Logger) Option {
	return func(p *Packer) {
		p.l = l
	}
}
