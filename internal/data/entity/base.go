package entity

// Base is embedded by rows that take part in optimistic concurrency.
// Version is bumped by every committed update and checked on update and delete.
type Base struct {
	ID      int64 `db:"id"`
	Version int   `db:"version"`
}

// BaseSimple is embedded by reference rows that are never edited through the API.
type BaseSimple struct {
	ID int64 `db:"id"`
}
