// Rooms submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func roomsMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Rooms ---")
		fmt.Fprintln(p.out, "1. List rooms")
		fmt.Fprintln(p.out, "2. Register room")
		fmt.Fprintln(p.out, "3. Update room")
		fmt.Fprintln(p.out, "4. Remove room")
		fmt.Fprintln(p.out, "5. Show room")
		fmt.Fprintln(p.out, "6. Insert item")
		fmt.Fprintln(p.out, "7. Remove item")
		fmt.Fprintln(p.out, "8. Find room by artist")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			rooms := reg.Rooms().List()
			if len(rooms) == 0 {
				fmt.Fprintln(p.out, "No rooms registered.")
				continue
			}
			for _, room := range rooms {
				fmt.Fprintln(p.out, room.Display())
			}
		case 2:
			name := p.readLine("Name")
			artistID := p.readInt("Artist ID")
			id, err := reg.Rooms().Register(name, artistID)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("room registered with ID %d", id)
		case 3:
			id := p.readInt("Room ID")
			name := p.readLine("New name")
			artistID := p.readInt("New artist ID")
			if err := reg.Rooms().Update(id, name, artistID); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("room %d updated", id)
		case 4:
			id := p.readInt("Room ID")
			if reg.Rooms().Remove(id) {
				p.printOK("room %d removed", id)
			} else {
				fmt.Fprintf(p.out, "Room %d is not registered.\n", id)
			}
		case 5:
			id := p.readInt("Room ID")
			room, err := reg.Rooms().FindByID(id)
			if err != nil {
				p.printErr(err)
				continue
			}
			printRoom(p, room)
		case 6:
			roomID := p.readInt("Room ID")
			item, ok := resolveItem(reg, p)
			if !ok {
				continue
			}
			qty := p.readInt("Quantity")
			if err := reg.Rooms().InsertItem(roomID, item.ID, item.Name, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("%d x %s placed in room %d", qty, item.Name, roomID)
		case 7:
			roomID := p.readInt("Room ID")
			itemID := p.readInt("Item ID")
			qty := p.readInt("Quantity")
			if err := reg.Rooms().RemoveItem(roomID, itemID, qty); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("%d of item %d taken from room %d", qty, itemID, roomID)
		case 8:
			artistID := p.readInt("Artist ID")
			room, err := reg.Rooms().FindByArtist(artistID)
			if err != nil {
				p.printErr(err)
				continue
			}
			printRoom(p, room)
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}

func printRoom(p *prompter, room *types.Room) {
	fmt.Fprintln(p.out, room.Display())
	items := room.Items()
	if len(items) == 0 {
		fmt.Fprintln(p.out, "  No items in the room.")
		return
	}
	fmt.Fprintf(p.out, "  %-5s %-30s %s\n", "ID", "Name", "Quantity")
	for _, line := range items {
		fmt.Fprintf(p.out, "  %-5d %-30s %d\n", line.ItemID, line.ItemName, line.Quantity)
	}
}
