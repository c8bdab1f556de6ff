// Command huffgen reads a plain-text (symbol, pattern, bits) code table
// and emits a Go source file implementing its decision-tree decoder,
// built from internal/huffgen.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mbax/huffcode/internal/huffgen"
)

func main() {
	var (
		table       = flag.String("table", "", "code table file (required)")
		out         = flag.String("out", "", "output .go file (default: stdout)")
		packageName = flag.String("package", "main", "package name for the generated file")
		funcName    = flag.String("func", "decode", "name of the generated decode function")
	)
	flag.Parse()
	if len(*table) == 0 {
		fmt.Println("Error: ", "table file required ...")
		os.Exit(1)
	}

	points, err := readTableFile(*table)
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}

	root, err := huffgen.BuildTrie(points)
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}

	w := os.Stdout
	if len(*out) != 0 {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := huffgen.Generate(f, *packageName, *funcName, root); err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
		return
	}
	if err := huffgen.Generate(w, *packageName, *funcName, root); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
