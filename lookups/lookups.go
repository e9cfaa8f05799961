package lookups

import "party-room-api/models"

// Entry is a single row of a static lookup table
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tables holds the static lookup lists served by the API. Built once at
// startup and injected into handlers instead of read as package globals.
type Tables struct {
	MealTypes          []Entry
	DrinkCategories    []Entry
	FamilyAffiliations []Entry
}

// Default builds the lookup tables from the model enumerations plus the
// legacy single-tenant affiliation list.
func Default() Tables {
	t := Tables{
		// Legacy flat-mode dropdown, kept for the /affiliations/ endpoint
		FamilyAffiliations: []Entry{
			{ID: 1, Name: "Razvan"},
			{ID: 2, Name: "Andrei"},
			{ID: 3, Name: "Matei"},
		},
	}
	for i, mt := range models.MealTypes {
		t.MealTypes = append(t.MealTypes, Entry{ID: i + 1, Name: string(mt)})
	}
	for i, dc := range models.DrinkCategories {
		t.DrinkCategories = append(t.DrinkCategories, Entry{ID: i + 1, Name: string(dc)})
	}
	return t
}
