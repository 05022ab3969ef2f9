// Command aislenav finds walking routes on a store floor plan and prints
// turn-by-turn directions to the nearest spot next to a shelf.
//
// Usage:
//
//	aislenav areas
//	aislenav route   --from 26,17 --to 6,7
//	aislenav nearest --from 26,17 --area dairy
//	aislenav survey  --from 26,17 --workers 4
//	aislenav render  --from 26,17 --key p
//	aislenav export  > store.yaml
//
// Without --layout the built-in 28×35 supermarket is used.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
