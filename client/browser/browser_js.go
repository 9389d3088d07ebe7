//go:build js

package browser

import (
	"fmt"
	"syscall/js"
)

// Open opens url in a new tab.
func Open(url string) error {
	if w := js.Global().Get("window").Call("open", url, "_blank"); w.IsNull() {
		return fmt.Errorf("failed to open %s: blocked by the browser", url)
	}
	return nil
}
