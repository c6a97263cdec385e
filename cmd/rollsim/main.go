// Command rollsim simulates a batch of rolls against one of the resolution
// tables and prints the per-entry hit distribution. It is a quick sanity
// check that table ranges are weighted the way the authors intended.
package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/voidwatch/crewdeck/internal/dice"
	"github.com/voidwatch/crewdeck/internal/platform/config"
	"github.com/voidwatch/crewdeck/internal/tables"
)

func main() {
	tableFlag := flag.String("table", "panic", "table to roll against (stress or panic)")
	rolls := flag.Int("rolls", 10000, "number of simulated rolls")
	seed := flag.Int64("seed", 1, "base seed; roll i uses seed+i")
	stress := flag.Int("stress", 5, "simulated stress vital")
	resolve := flag.Int("resolve", 2, "simulated resolve vital")
	modifiers := flag.Int("modifiers", 0, "simulated roll modifiers")
	flag.Parse()

	table, ok := tables.ByType(tables.Type(*tableFlag))
	if !ok {
		config.Exitf("unknown table %q", *tableFlag)
	}
	if err := tables.Validate(table); err != nil {
		config.Exitf("table %s is invalid: %v", table.Type, err)
	}

	counts := make(map[string]int)
	for i := 0; i < *rolls; i++ {
		die := dice.RollD6(*seed + int64(i))
		total := die + *stress - *resolve + *modifiers
		entry := table.ResolveByTotal(total)
		counts[entry.ID]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%d rolls on %s (stress=%d resolve=%d modifiers=%d)\n", *rolls, table.Type, *stress, *resolve, *modifiers)
	for _, id := range ids {
		fmt.Printf("%-24s %6d (%.1f%%)\n", id, counts[id], 100*float64(counts[id])/float64(*rolls))
	}
}
