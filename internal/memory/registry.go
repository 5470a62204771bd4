// Package memory implements the camarim managers backed by plain
// in-memory collections. Each manager exclusively owns its entities and
// hands out copies; all cross-entity references are plain integer ids.
// State lives for the process lifetime only.
package memory

import "camarim/pkg/types"

var _ types.Registry = (*Registry)(nil)

// Registry bundles one instance of every manager.
type Registry struct {
	catalog *Catalog
	stock   *Stock
	rooms   *Rooms
	orders  *Orders
	lists   *ShoppingLists
	artists *Artists
	users   *Users
}

// NewRegistry creates an empty manager set.
func NewRegistry() *Registry {
	return &Registry{
		catalog: newCatalog(),
		stock:   newStock(),
		rooms:   newRooms(),
		orders:  newOrders(),
		lists:   newShoppingLists(),
		artists: newArtists(),
		users:   newUsers(),
	}
}

func (r *Registry) Catalog() types.Catalog             { return r.catalog }
func (r *Registry) Stock() types.Stock                 { return r.stock }
func (r *Registry) Rooms() types.Rooms                 { return r.rooms }
func (r *Registry) Orders() types.Orders               { return r.orders }
func (r *Registry) ShoppingLists() types.ShoppingLists { return r.lists }
func (r *Registry) Artists() types.Artists             { return r.artists }
func (r *Registry) Users() types.Users                 { return r.users }
