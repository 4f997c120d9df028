// Command rsatool is a pedagogical RSA toolkit: it generates key material,
// encrypts and decrypts integer-encoded messages, and — given a partial set
// of RSA parameters — reconstructs the rest via algebraic inference and
// Wiener's attack on small private exponents.
//
// Grounded on original_source/src/main.cpp and on the teacher repo's
// (cryptotimed) main.go convention of a single top-level error surfaced to
// stderr before a non-zero exit.
package main

import (
	"fmt"
	"os"

	"rsatool/internal/cliio"
	"rsatool/internal/randsrc"
	"rsatool/internal/rsa"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	container := cliio.NewContainer()
	container.ParseArgs(args)

	state := rsa.NewState()
	container.Apply(state)

	src := randsrc.NewCryptoSource()

	switch container.Mode {
	case cliio.ModeGenerate:
		return runGenerate(src, container, state)
	case cliio.ModeEncrypt:
		return runEncrypt(container, state)
	case cliio.ModeDecrypt:
		return runDecrypt(container, state)
	default:
		printUsage()
		return -1
	}
}

// runGenerate always returns 0, per spec.md §6's exit-code contract: an
// error from GenKeyFrom (such as a non-positive --pq-len/--e-len) is
// reported to stderr but never turns generation into a failure mode.
func runGenerate(src randsrc.Source, c *cliio.Container, s *rsa.State) int {
	generated, err := rsa.GenKeyFrom(src, s, c.PQLen, c.ELen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rsatool: %v\n", err)
		cliio.Dispatch(c.Outputs, s)
		return 0
	}

	if generated == "" {
		fmt.Println("Generated randomly: (none)")
	} else {
		fmt.Printf("Generated randomly: %s\n", generated)
	}

	cliio.Dispatch(c.Outputs, s)
	return 0
}

func runEncrypt(c *cliio.Container, s *rsa.State) int {
	if !s.Encrypt() {
		fmt.Fprintf(os.Stderr, "rsatool: not enough information provided for mode selected\n")
		return -2
	}
	outputs := c.Outputs
	if len(outputs) == 0 {
		outputs = []cliio.OutputDescriptor{{Attrs: "c"}}
	}
	cliio.Dispatch(outputs, s)
	return 0
}

func runDecrypt(c *cliio.Container, s *rsa.State) int {
	if !s.Decrypt() {
		fmt.Fprintf(os.Stderr, "rsatool: not enough information provided for mode selected\n")
		return -2
	}
	outputs := c.Outputs
	if len(outputs) == 0 {
		outputs = []cliio.OutputDescriptor{{Attrs: "m"}}
	}
	cliio.Dispatch(outputs, s)
	return 0
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "rsatool - pedagogical RSA parameter-engine toolkit\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s -g [-iT=VALUE ...] [-oATTRS[=PATH] ...] [--pq-len=N] [--e-len=N]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -e [-iT=VALUE ...] [-oATTRS[=PATH] ...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -d [-iT=VALUE ...] [-oATTRS[=PATH] ...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nField tags: m c e d n t p q, plus s for string-valued plaintext.\n")
}
