// Command parlang is the engine's top-level entry point, the Go
// counterpart of the original runtime's src/main.cpp: it parses its
// arguments, builds the lazy arguments for the compiled program's main
// function, runs it to completion on a fresh worker pool, and reports the
// result and execution time.
//
// This binary's compiled program is the Fibonacci scenario (spec scenario
// E): a single Int argument n, result fib(n).
package main

import (
	"fmt"
	"os"
	"strconv"

	"code.parlang.run/engine/driver"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/scenarios"
	"code.parlang.run/engine/value"
)

const mainArity = 1

func main() {
	args := os.Args[1:]
	if len(args) != mainArity {
		fmt.Fprintf(os.Stderr, "Invalid number of arguments expected %d got %d.\n", mainArity, len(args))
		os.Exit(1)
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid number of arguments expected %d got %d.\n", mainArity, len(args))
		os.Exit(1)
	}

	root, out := scenarios.Fib(lazy.Int(n))

	result := driver.Run(driver.Config{}, root, out)

	fmt.Println(value.Display(result.Value))
	fmt.Fprintf(os.Stderr, "Execution time: %dns\n", result.Duration.Nanoseconds())
}
