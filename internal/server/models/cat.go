package models

// Cat is a cat record. Deleted marks a soft-deleted row: such rows stay in
// the table but are excluded from lookups and cannot be deleted again.
type Cat struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	Age     float64 `json:"age"`
	Weight  float64 `json:"weight"`
	Deleted bool    `json:"-"`
}

// validBreeds is the fixed set of accepted breed codes (TheCatAPI ids).
var validBreeds = map[string]struct{}{
	"abys": {}, "beng": {}, "chau": {}, "drex": {}, "emau": {},
	"hbro": {}, "java": {}, "khao": {}, "lape": {}, "mala": {},
}

// ValidBreed reports whether breed is one of the accepted breed codes.
func ValidBreed(breed string) bool {
	_, ok := validBreeds[breed]
	return ok
}
