package entity

import "github.com/shopspring/decimal"

type MovieDetails struct {
	Base
	MovieID  int64           `db:"movie_id"`
	Synopsis string          `db:"synopsis"`
	Language string          `db:"language"`
	Budget   decimal.Decimal `db:"budget"`
}
