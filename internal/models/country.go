package models

// Country — страна с отелями.
// Version используется для оптимистичной блокировки при обновлении.
type Country struct {
	ID        int64
	Name      string
	ShortName string
	Version   int64
}

// CountryDetails — страна вместе со списком её отелей.
type CountryDetails struct {
	Country
	Hotels []Hotel
}
