// Command xoodoo-trace prints the state after every sub-step of every round
// of the Xoodoo permutation, for diffing against other implementations.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/xoodoo"
)

func main() {
	stateHex := flag.String("state", "", "initial state as 96 hex digits, little-endian lanes (default all zero)")
	flag.Parse()

	var a [xoodoo.Lanes]uint32
	if *stateHex != "" {
		buf, err := hex.DecodeString(*stateHex)
		if err != nil {
			slog.Error("invalid state", "err", err)
			os.Exit(1)
		}
		if len(buf) != 48 {
			slog.Error("invalid state length", "bytes", len(buf), "want", 48)
			os.Exit(1)
		}
		for i := range a {
			a[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
		}
	}

	for i, s := range xoodoo.Trace(a) {
		fmt.Printf("round %2d %-8s", i/xoodoo.StepsPerRound, xoodoo.StepNames[i%xoodoo.StepsPerRound])
		for _, w := range s {
			fmt.Printf(" %08x", w)
		}
		fmt.Println()
	}
}
