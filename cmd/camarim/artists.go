// Artists submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func artistsMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Artists ---")
		fmt.Fprintln(p.out, "1. List artists")
		fmt.Fprintln(p.out, "2. Register artist")
		fmt.Fprintln(p.out, "3. Update artist")
		fmt.Fprintln(p.out, "4. Remove artist")
		fmt.Fprintln(p.out, "5. Find artists by room")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			artists := reg.Artists().List()
			if len(artists) == 0 {
				fmt.Fprintln(p.out, "No artists registered.")
				continue
			}
			for _, artist := range artists {
				fmt.Fprintln(p.out, artist.Display())
			}
		case 2:
			name := p.readLine("Name")
			roomID := p.readInt("Room ID")
			id, err := reg.Artists().Register(name, roomID)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("artist registered with ID %d", id)
		case 3:
			id := p.readInt("Artist ID")
			name := p.readLine("New name")
			roomID := p.readInt("New room ID")
			if err := reg.Artists().Update(id, name, roomID); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("artist %d updated", id)
		case 4:
			id := p.readInt("Artist ID")
			if reg.Artists().Remove(id) {
				p.printOK("artist %d removed", id)
			} else {
				fmt.Fprintf(p.out, "Artist %d is not registered.\n", id)
			}
		case 5:
			roomID := p.readInt("Room ID")
			artists := reg.Artists().FindByRoom(roomID)
			if len(artists) == 0 {
				fmt.Fprintf(p.out, "No artists in room %d.\n", roomID)
				continue
			}
			for _, artist := range artists {
				fmt.Fprintln(p.out, artist.Display())
			}
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}
