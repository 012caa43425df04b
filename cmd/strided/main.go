// Package main provides the strided kernel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/strided-ml/strided/backend/cpu"
	"github.com/strided-ml/strided/buffer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("strided %s\n", version)
		return
	}

	backend := cpu.New()
	fmt.Println("strided - dense flat-memory compute kernels")
	fmt.Printf("Version:   %s\n\n", version)
	fmt.Printf("Backend:   %s\n", backend.Name())
	fmt.Printf("Tile edge: %d\n", cpu.Tile)
	fmt.Printf("Alignment: %d bytes\n", buffer.Alignment)
	fmt.Printf("Elem size: %d bytes\n", buffer.ElemSize)
}
