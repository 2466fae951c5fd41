//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("MinigrepNewSearcher", js.FuncOf(newSearcher))
	js.Global().Set("MinigrepSearch", js.FuncOf(search))
	js.Global().Set("MinigrepFind", js.FuncOf(find))
	js.Global().Set("MinigrepCloseSearcher", js.FuncOf(closeSearcher))

	// Keep WASM running
	<-make(chan struct{})
}
