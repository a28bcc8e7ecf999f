package main

import (
	"fmt"
	"os"
	"path/filepath"

	"siunits"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "basic"})

	si := siunits.SI()

	// Work done by a 15 kN force over 10 m
	force := si.MustParse("15 kN")
	work := force.Mul(si.MustParse("10 m"))
	kj, err := work.To("kJ")
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Printf("%s x 10 m = %s = %s\n", force, work, kj)
	fmt.Printf("%s in base units: %s\n", force, force.ToBase())

	// Speeds
	v := si.MustUnit("m").Scale(15).Div(si.MustUnit("s"))
	kmh, _ := v.To("km.h-1")
	kms, _ := v.Swap("m", "km")
	fmt.Printf("%s = %s = %s\n", v, kmh, kms)

	// Addition only works on identical units
	if _, err := si.MustParse("2e9 nm").Add(si.MustParse("1 m")); err != nil {
		fmt.Println("error:", err)
	}
	longer, _ := si.MustParse("2e9 nm").Greater(si.MustParse("1 m"))
	fmt.Println("2e9 nm > 1 m:", longer)

	// Store the SI registry in a SQLite catalog and read it back
	dir, err := os.MkdirTemp("", "siunits")
	if err != nil {
		logger.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cat, err := siunits.OpenCatalog(filepath.Join(dir, "units.db"))
	if err != nil {
		logger.Fatal(err)
	}
	defer cat.Close()

	id, err := cat.Save(si)
	if err != nil {
		logger.Fatal(err)
	}
	reg, err := cat.Load(id)
	if err != nil {
		logger.Fatal(err)
	}
	t, err := reg.MustParse("20 degC").To("K")
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Printf("catalog %s (%s): 20 degC = %s\n", id, reg.Name(), t)
}
