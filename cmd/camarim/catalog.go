// Catalog submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func catalogMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Catalog ---")
		fmt.Fprintln(p.out, "1. List items")
		fmt.Fprintln(p.out, "2. Register item")
		fmt.Fprintln(p.out, "3. Update item")
		fmt.Fprintln(p.out, "4. Remove item")
		fmt.Fprintln(p.out, "5. Find item by name")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			items := reg.Catalog().List()
			if len(items) == 0 {
				fmt.Fprintln(p.out, "No items cataloged.")
				continue
			}
			for _, item := range items {
				fmt.Fprintln(p.out, item.Display())
			}
		case 2:
			name := p.readLine("Name")
			price := p.readFloat("Price")
			id, err := reg.Catalog().Register(name, price)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("item registered with ID %d", id)
		case 3:
			id := p.readInt("Item ID")
			name := p.readLine("New name")
			price := p.readFloat("New price")
			if err := reg.Catalog().Update(id, name, price); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("item %d updated", id)
		case 4:
			id := p.readInt("Item ID")
			if reg.Catalog().Remove(id) {
				p.printOK("item %d removed", id)
			} else {
				fmt.Fprintf(p.out, "Item %d is not cataloged.\n", id)
			}
		case 5:
			name := p.readLine("Name")
			item, err := reg.Catalog().FindByName(name)
			if err != nil {
				p.printErr(err)
				continue
			}
			fmt.Fprintln(p.out, item.Display())
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}
