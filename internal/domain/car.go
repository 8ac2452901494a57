package domain

import "github.com/shopspring/decimal"

type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"releaseYear"`
	Available    bool   `json:"available"`
	GasAvailable bool   `json:"gasAvailable"`
}

// CarCategory groups cars that share a daily price. CarIDs is the pool a
// rental draws from.
type CarCategory struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DailyPrice decimal.Decimal `json:"price"`
	CarIDs     []string        `json:"carIds"`
}
