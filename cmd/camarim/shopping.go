// Shopping-list submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func shoppingMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Shopping lists ---")
		fmt.Fprintln(p.out, "1. List shopping lists")
		fmt.Fprintln(p.out, "2. Create list")
		fmt.Fprintln(p.out, "3. Add item")
		fmt.Fprintln(p.out, "4. Remove item")
		fmt.Fprintln(p.out, "5. Update quantity")
		fmt.Fprintln(p.out, "6. Show total")
		fmt.Fprintln(p.out, "7. Clear list")
		fmt.Fprintln(p.out, "8. Remove list")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			lists := reg.ShoppingLists().List()
			if len(lists) == 0 {
				fmt.Fprintln(p.out, "No shopping lists.")
				continue
			}
			for _, list := range lists {
				printShoppingList(p, list)
			}
		case 2:
			description := p.readLine("Description")
			id, err := reg.ShoppingLists().Create(description)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("shopping list created with ID %d", id)
		case 3:
			listID := p.readInt("List ID")
			item, ok := resolveItem(reg, p)
			if !ok {
				continue
			}
			qty := p.readInt("Quantity")
			if err := reg.ShoppingLists().AddItem(listID, item.ID, item.Name, qty, item.Price); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("%d x %s added to list %d", qty, item.Name, listID)
		case 4:
			listID := p.readInt("List ID")
			itemID := p.readInt("Item ID")
			removed, err := reg.ShoppingLists().RemoveItem(listID, itemID)
			if err != nil {
				p.printErr(err)
				continue
			}
			if removed {
				p.printOK("item %d removed from list %d", itemID, listID)
			} else {
				fmt.Fprintf(p.out, "Item %d is not on list %d.\n", itemID, listID)
			}
		case 5:
			listID := p.readInt("List ID")
			itemID := p.readInt("Item ID")
			qty := p.readInt("New quantity")
			if err := reg.ShoppingLists().UpdateQuantity(listID, itemID, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("item %d on list %d set to %d", itemID, listID, qty)
		case 6:
			listID := p.readInt("List ID")
			total, err := reg.ShoppingLists().Total(listID)
			if err != nil {
				p.printErr(err)
				continue
			}
			fmt.Fprintf(p.out, "Total: %.2f\n", total)
		case 7:
			listID := p.readInt("List ID")
			if err := reg.ShoppingLists().Clear(listID); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("list %d cleared", listID)
		case 8:
			listID := p.readInt("List ID")
			if reg.ShoppingLists().Remove(listID) {
				p.printOK("list %d removed", listID)
			} else {
				fmt.Fprintf(p.out, "List %d does not exist.\n", listID)
			}
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}

func printShoppingList(p *prompter, list *types.ShoppingList) {
	fmt.Fprintln(p.out, list.Display())
	items := list.Items()
	if len(items) == 0 {
		fmt.Fprintln(p.out, "  List is empty.")
		return
	}
	fmt.Fprintf(p.out, "  %-5s %-25s %-8s %-12s %s\n", "ID", "Name", "Qty", "Unit price", "Subtotal")
	for _, line := range items {
		fmt.Fprintf(p.out, "  %-5d %-25s %-8d %-12.2f %.2f\n", line.ItemID, line.ItemName, line.Quantity, line.UnitPrice, line.Subtotal)
	}
}
