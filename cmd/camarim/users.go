// Users submenu.
package main

import (
	"fmt"

	"camarim/pkg/types"
)

func usersMenu(reg types.Registry, p *prompter) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "--- Users ---")
		fmt.Fprintln(p.out, "1. List users")
		fmt.Fprintln(p.out, "2. Register user")
		fmt.Fprintln(p.out, "3. Update user")
		fmt.Fprintln(p.out, "4. Remove user")
		fmt.Fprintln(p.out, "5. Check credentials")
		fmt.Fprintln(p.out, "0. Back")

		switch p.readInt("Option") {
		case 1:
			users := reg.Users().List()
			if len(users) == 0 {
				fmt.Fprintln(p.out, "No users registered.")
				continue
			}
			for _, user := range users {
				fmt.Fprintln(p.out, user.Display())
			}
		case 2:
			name := p.readLine("Name")
			login := p.readLine("Login")
			password := p.readLine("Password")
			id, err := reg.Users().Register(name, login, password)
			if err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("user registered with ID %d", id)
		case 3:
			id := p.readInt("User ID")
			name := p.readLine("New name")
			login := p.readLine("New login")
			password := p.readLine("New password")
			if err := reg.Users().Update(id, name, login, password); err != nil {
				p.printErr(err)
				continue
			}
			p.printOK("user %d updated", id)
		case 4:
			id := p.readInt("User ID")
			if reg.Users().Remove(id) {
				p.printOK("user %d removed", id)
			} else {
				fmt.Fprintf(p.out, "User %d is not registered.\n", id)
			}
		case 5:
			login := p.readLine("Login")
			password := p.readLine("Password")
			if reg.Users().Authenticate(login, password) {
				fmt.Fprintln(p.out, "Credentials are valid.")
			} else {
				fmt.Fprintln(p.out, "Invalid credentials.")
			}
		case 0:
			return
		default:
			fmt.Fprintln(p.out, "Unknown option.")
		}
	}
}
