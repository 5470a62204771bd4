// Orders submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func ordersMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Orders ---")
		fmt.Fprintln(p.out, "1. List orders")
		fmt.Fprintln(p.out, "2. List pending orders")
		fmt.Fprintln(p.out, "3. Create order")
		fmt.Fprintln(p.out, "4. Add item")
		fmt.Fprintln(p.out, "5. Remove item")
		fmt.Fprintln(p.out, "6. Mark fulfilled")
		fmt.Fprintln(p.out, "7. Remove order")
		fmt.Fprintln(p.out, "8. Find orders by room")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			printOrders(p, reg.Orders().List())
		case 2:
			printOrders(p, reg.Orders().ListPending())
		case 3:
			roomID := p.readInt("Room ID")
			artistName := p.readLine("Artist name")
			id, err := reg.Orders().Create(roomID, artistName)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("order created with ID %d", id)
		case 4:
			orderID := p.readInt("Order ID")
			item, ok := resolveItem(reg, p)
			if !ok {
				continue
			}
			qty := p.readInt("Quantity")
			if err := reg.Orders().AddItem(orderID, item.ID, item.Name, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("%d x %s added to order %d", qty, item.Name, orderID)
		case 5:
			orderID := p.readInt("Order ID")
			itemID := p.readInt("Item ID")
			removed, err := reg.Orders().RemoveItem(orderID, itemID)
			if err != nil {
				p.printErr(err)
				continue
			}
			if removed {
				p.printOK("item %d removed from order %d", itemID, orderID)
			} else {
				fmt.Fprintf(p.out, "Item %d is not on order %d.\n", itemID, orderID)
			}
		case 6:
			orderID := p.readInt("Order ID")
			if err := reg.Orders().MarkFulfilled(orderID); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("order %d fulfilled", orderID)
		case 7:
			orderID := p.readInt("Order ID")
			if reg.Orders().Remove(orderID) {
				p.printOK("order %d removed", orderID)
			} else {
				fmt.Fprintf(p.out, "Order %d does not exist.\n", orderID)
			}
		case 8:
			roomID := p.readInt("Room ID")
			printOrders(p, reg.Orders().FindByRoom(roomID))
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}

func printOrders(p *prompter, orders []*types.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(p.out, "No orders.")
		return
	}
	for _, order := range orders {
		fmt.Fprintln(p.out, order.Display())
		for _, line := range order.Items() {
			fmt.Fprintf(p.out, "  %-5d %-30s %d\n", line.ItemID, line.ItemName, line.Quantity)
		}
	}
}
