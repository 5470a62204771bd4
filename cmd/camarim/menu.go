// Top-level interactive menu. Each selection dispatches to a domain
// submenu; every submenu action calls exactly one manager operation and
// prints either the result or the error, then the loop continues.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func runMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "=== CAMARIM ===")
		fmt.Fprintln(p.out, "1. Catalog")
		fmt.Fprintln(p.out, "2. Stock")
		fmt.Fprintln(p.out, "3. Rooms")
		fmt.Fprintln(p.out, "4. Orders")
		fmt.Fprintln(p.out, "5. Shopping lists")
		fmt.Fprintln(p.out, "6. Artists")
		fmt.Fprintln(p.out, "7. Users")
		fmt.Fprintln(p.out, "0. Exit")

		switch p.readInt("Option") {
		case 1:
			catalogMenu(reg, p)
		case 2:
			stockMenu(reg, p)
		case 3:
			roomsMenu(reg, p)
		case 4:
			ordersMenu(reg, p)
		case 5:
			shoppingMenu(reg, p)
		case 6:
			artistsMenu(reg, p)
		case 7:
			usersMenu(reg, p)
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}

// resolveItem looks an item up in the catalog so downstream managers
// receive the already-resolved id, name, and price by value.
func resolveItem(reg types.Registry, p *prompter) (types.Item, bool) {
	id := p.readInt("Item ID")
	item, err := reg.Catalog().FindByID(id)
	if err != nil {
		p.printErr(err)
		return types.Item{}, false
	}
	return item, true
}
