//go:build !wasip1

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr,
		"the mirror plugin must be built for Wasm:\n"+
			"  GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o libmirror.so ./plugins/mirror")
	os.Exit(1)
}
