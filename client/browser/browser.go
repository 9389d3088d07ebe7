//go:build !js

package browser

import (
	"fmt"

	"github.com/pkg/browser"
)

// Open opens url in the system browser.
func Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %v", url, err)
	}
	return nil
}
