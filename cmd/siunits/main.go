// Command siunits parses, converts and compares SI quantities.
//
//	siunits convert "15 kN.m" kJ
//	siunits base "15 kN"
//	siunits compare "2e9 nm" "1 m"
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
