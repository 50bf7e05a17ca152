//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cell-smoother requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/smoother`, or use ./cmd/smoother-term or ./cmd/smoother-run.")
	os.Exit(2)
}
