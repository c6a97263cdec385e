// Command tablecheck verifies the authoring invariants of the built-in
// resolution tables: contiguous coverage, unique ids, well-formed entries,
// and resolvable apply options. It exits non-zero on the first violation.
package main

import (
	"fmt"

	"github.com/voidwatch/crewdeck/internal/platform/config"
	"github.com/voidwatch/crewdeck/internal/tables"
)

func main() {
	for _, table := range []tables.Table{tables.Stress(), tables.Panic()} {
		if err := tables.Validate(table); err != nil {
			config.Exitf("table %s is invalid: %v", table.Type, err)
		}
		fmt.Printf("table %s: %d entries, covers [%d, %d]\n",
			table.Type, len(table.Entries), table.Entries[0].Min, table.Entries[len(table.Entries)-1].Max)
	}
	fmt.Println("ok")
}
