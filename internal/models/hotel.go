package models

// Hotel — отель, принадлежащий стране.
// Rating может отсутствовать.
type Hotel struct {
	ID        int64
	Name      string
	Address   string
	Rating    *float64
	CountryID int64
	Version   int64
}
