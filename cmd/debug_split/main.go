package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"ship-registry/core/config"
	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/decode"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/splitter"

	"github.com/goccy/go-json"
)

// Splits the picture-book entries of a local export and writes the result
// to debug_split.json. Usage: debug_split <picturebook.json> [bookNo...]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_split <picturebook.json> [bookNo...]")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	c, err := classifier.FromConfig(cfg.Snapshot.ClassifierTable)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	entries, err := decode.Book(f)
	if err != nil {
		log.Fatal(err)
	}

	wanted := make(map[int]bool)
	for _, arg := range os.Args[2:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("invalid book number %q", arg)
		}
		wanted[n] = true
	}

	type result struct {
		BookNo  int                `json:"bookNo"`
		Pages   []string           `json:"pages"`
		Records []models.BookEntry `json:"records"`
	}

	var out []result
	drift := 0
	for _, entry := range entries {
		if len(wanted) > 0 && !wanted[entry.BookNo] {
			continue
		}

		r := result{BookNo: entry.BookNo}
		for _, src := range c.Pages(entry) {
			r.Pages = append(r.Pages, src.String())
		}
		if sources, ok := c.Sources(entry.BookNo); ok && len(sources)+1 != len(entry.CardList) {
			drift++
			fmt.Printf("⚠️  book %d (%s): table does not describe its %d pages\n", entry.BookNo, entry.ShipName, len(entry.CardList))
		}

		first, second := splitter.Split(c, entry)
		r.Records = append(r.Records, first)
		if second != nil {
			r.Records = append(r.Records, *second)
		}
		out = append(out, r)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	if err := os.WriteFile("debug_split.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nSplit %d entries (%d with table drift). Check debug_split.json for details.\n", len(out), drift)
}
