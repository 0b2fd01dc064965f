//go:build windows

package win32

import "github.com/pinwin/pinwin/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Reader:   NewReader(),
			ZOrderer: NewZOrderer(),
		}, nil
	}
}
