package catalog

import "sort"

// Entry describes one sellable destination: its blurb and the price quoted
// for each cab type. Loaded once at process start, never mutated.
type Entry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CabPrices   map[string]int `json:"cabs"`
}

var destinations = map[string]Entry{
	"Tsomo Lake": {
		Name:        "Tsomo Lake",
		Description: "A serene high-altitude lake surrounded by snow-clad mountains.",
		CabPrices:   map[string]int{"WagonR": 8000, "Innova": 12000},
	},
	"Namchi": {
		Name:        "Namchi",
		Description: "Home to the famous Char Dham and lush tea gardens.",
		CabPrices:   map[string]int{"WagonR": 5000, "Innova": 8000},
	},
	"Guru Dongmar Lake": {
		Name:        "Guru Dongmar Lake",
		Description: "A sacred and breathtaking lake at one of the world's highest altitudes.",
		CabPrices:   map[string]int{"WagonR": 20000, "Innova": 28000},
	},
	"Nathu La": {
		Name:        "Nathu La",
		Description: "A mountain pass on the Indo-China border offering stunning views.",
		CabPrices:   map[string]int{"WagonR": 9000, "Innova": 15000},
	},
	"Gangtok": {
		Name:        "Gangtok",
		Description: "The vibrant capital city of Sikkim, known for monasteries and mountain views.",
		CabPrices:   map[string]int{"WagonR": 8000, "Innova": 10000},
	},
	"Pelling": {
		Name:        "Pelling",
		Description: "Picturesque hill town with monasteries, waterfalls, and the Sky Walk.",
		CabPrices:   map[string]int{"WagonR": 6000, "Innova": 9000},
	},
	"Zuluk": {
		Name:        "Zuluk",
		Description: "A quiet hamlet on the old Silk Route, famous for its winding mountain road.",
		CabPrices:   map[string]int{"WagonR": 7000, "Innova": 11000},
	},
}

// Lookup returns the entry for a destination name.
func Lookup(name string) (Entry, bool) {
	e, ok := destinations[name]
	return e, ok
}

// Names returns all destination names in sorted order.
func Names() []string {
	names := make([]string, 0, len(destinations))
	for name := range destinations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the full catalog keyed by destination name.
func All() map[string]Entry {
	out := make(map[string]Entry, len(destinations))
	for name, e := range destinations {
		out[name] = e
	}
	return out
}
