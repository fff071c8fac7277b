// Package ports defines the contracts between the hub operations core and
// its adapters: repositories bound to a unit of work, the sequence store, the
// allocation scope locker and the booking lookup.
package ports
