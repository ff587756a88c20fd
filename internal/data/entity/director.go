package entity

type Director struct {
	BaseSimple
	Name string `db:"name"`
}
