// Stock submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func stockMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Stock ---")
		fmt.Fprintln(p.out, "1. List stock")
		fmt.Fprintln(p.out, "2. Add stock")
		fmt.Fprintln(p.out, "3. Remove stock")
		fmt.Fprintln(p.out, "4. Check availability")
		fmt.Fprintln(p.out, "5. Set quantity")
		fmt.Fprintln(p.out, "6. Drop line")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			lines := reg.Stock().List()
			if len(lines) == 0 {
				fmt.Fprintln(p.out, "Stock is empty.")
				continue
			}
			fmt.Fprintf(p.out, "%-5s %-30s %s\n", "ID", "Name", "Quantity")
			for _, line := range lines {
				fmt.Fprintf(p.out, "%-5d %-30s %d\n", line.ItemID, line.ItemName, line.Quantity)
			}
		case 2:
			item, ok := resolveItem(reg, p)
			if !ok {
				continue
			}
			qty := p.readInt("Quantity")
			if err := reg.Stock().Add(item.ID, item.Name, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("stock added, %s now at %d", item.Name, reg.Stock().Quantity(item.ID))
		case 3:
			id := p.readInt("Item ID")
			qty := p.readInt("Quantity")
			if err := reg.Stock().Remove(id, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("stock removed, item %d now at %d", id, reg.Stock().Quantity(id))
		case 4:
			id := p.readInt("Item ID")
			qty := p.readInt("Quantity")
			if reg.Stock().CheckAvailability(id, qty) {
				fmt.Fprintln(p.out, "Available.")
			} else {
				fmt.Fprintln(p.out, "Not available.")
			}
		case 5:
			id := p.readInt("Item ID")
			qty := p.readInt("New quantity")
			if err := reg.Stock().SetQuantity(id, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("item %d set to %d", id, qty)
		case 6:
			id := p.readInt("Item ID")
			if reg.Stock().Drop(id) {
				p.printOK("line for item %d dropped", id)
			} else {
				fmt.Fprintf(p.out, "Item %d is not in stock.\n", id)
			}
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}
