// Package types defines the entity types, their validated mutation
// methods, and the standard error kinds for the camarim inventory
// system: people (users and artists), catalog items, warehouse stock
// lines, dressing rooms, purchase orders, and shopping lists.
package types
