// Package domain contains the core entities of the listing application:
// users, properties and reservations, together with the property
// search options and their validation rules. It is independent of any
// specific storage mechanism.
package domain
