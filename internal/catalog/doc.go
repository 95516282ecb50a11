// Package catalog holds the static LightBnB seed data in memory.
//
// Properties added to a Catalog are staged only: they live in the catalog
// until Seed writes the catalog through the persistent stores.
package catalog
