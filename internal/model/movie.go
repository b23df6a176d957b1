package model

// Movie is one catalog entry as stored in the flat movie file.  Cost is the
// base ticket price before the occupancy surcharge; the inventory side only
// ever reads it by name.
//
// Fields:
//  Name   – movie name, unique within the catalog, no whitespace.
//  Lang   – language tag (e.g. EN, HI).
//  Rating – rating out of 10.
//  Cost   – base ticket price in whole currency units.
type Movie struct {
	Name   string `json:"name"`
	Lang   string `json:"lang"`
	Rating int    `json:"rating"`
	Cost   int    `json:"cost"`
}
