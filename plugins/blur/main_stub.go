//go:build !wasip1

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr,
		"the blur plugin must be built for Wasm:\n"+
			"  GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o libblur.so ./plugins/blur")
	os.Exit(1)
}
