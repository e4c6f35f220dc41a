// Package catalog holds the static evidence reference data consumed at
// session creation. The engine never writes to it: the sqlite store is read
// once at process start into a Snapshot and all session draws go through the
// snapshot.
package catalog

import (
	"fmt"
	"math/rand"
)

// Category is one of the five thematic evidence groups.
type Category string

const (
	CategoryWeapon        Category = "weapon"
	CategoryCrimeScene    Category = "crime_scene"
	CategoryOffender      Category = "offender"
	CategoryTimeOfCrime   Category = "time_of_crime"
	CategoryMeansOfEscape Category = "means_of_escape"
)

// Categories returns the five categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryWeapon,
		CategoryCrimeScene,
		CategoryOffender,
		CategoryTimeOfCrime,
		CategoryMeansOfEscape,
	}
}

// ValidCategory reports whether c names a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Subtype narrows a category to one evidence facet.
type Subtype string

const (
	SubtypeObject         Subtype = "object"
	SubtypeColor          Subtype = "color"
	SubtypeCondition      Subtype = "condition"
	SubtypeLocation       Subtype = "location"
	SubtypeTemperature    Subtype = "temperature"
	SubtypeDistrict       Subtype = "district"
	SubtypeClothing       Subtype = "clothing"
	SubtypeSize           Subtype = "size"
	SubtypeCharacteristic Subtype = "characteristic"
	SubtypeWeekday        Subtype = "weekday"
	SubtypeDaytime        Subtype = "daytime"
	SubtypeTime           Subtype = "time"
	SubtypeModel          Subtype = "model"
	SubtypeEscapeRoute    Subtype = "escape_route"
)

// SolutionSubtypes maps each category to the three subtypes a solution set
// draws from, one clue per subtype.
var SolutionSubtypes = map[Category][3]Subtype{
	CategoryWeapon:        {SubtypeObject, SubtypeColor, SubtypeCondition},
	CategoryCrimeScene:    {SubtypeLocation, SubtypeTemperature, SubtypeDistrict},
	CategoryOffender:      {SubtypeClothing, SubtypeSize, SubtypeCharacteristic},
	CategoryTimeOfCrime:   {SubtypeWeekday, SubtypeDaytime, SubtypeTime},
	CategoryMeansOfEscape: {SubtypeModel, SubtypeColor, SubtypeEscapeRoute},
}

// Evidence is one named reference fact in the catalog.
type Evidence struct {
	Name     string
	Category Category
	Subtype  Subtype
}

// WouldYouRatherPair is a pair of prompts shown in the lobby between turns.
type WouldYouRatherPair struct {
	A string
	B string
}

type groupKey struct {
	category Category
	subtype  Subtype
}

// Snapshot is an immutable in-memory view of the evidence catalog.
type Snapshot struct {
	byGroup map[groupKey][]Evidence
}

// NewSnapshot indexes evidence by (category, subtype) and validates that
// every solution group has at least one entry to draw from.
func NewSnapshot(items []Evidence) (*Snapshot, error) {
	byGroup := make(map[groupKey][]Evidence)
	for _, item := range items {
		if !ValidCategory(item.Category) {
			return nil, fmt.Errorf("evidence %q has unknown category %q", item.Name, item.Category)
		}
		key := groupKey{category: item.Category, subtype: item.Subtype}
		byGroup[key] = append(byGroup[key], item)
	}

	for category, subtypes := range SolutionSubtypes {
		for _, subtype := range subtypes {
			if len(byGroup[groupKey{category, subtype}]) == 0 {
				return nil, fmt.Errorf("catalog group (%s, %s) is empty", category, subtype)
			}
		}
	}

	return &Snapshot{byGroup: byGroup}, nil
}

// Random draws one evidence item uniformly from the (category, subtype) group.
func (s *Snapshot) Random(rng *rand.Rand, category Category, subtype Subtype) (Evidence, error) {
	group := s.byGroup[groupKey{category, subtype}]
	if len(group) == 0 {
		return Evidence{}, fmt.Errorf("catalog group (%s, %s) is empty", category, subtype)
	}
	return group[rng.Intn(len(group))], nil
}

// DrawSolution draws the fixed 15-clue solution set: for every category, one
// evidence item per solution subtype.
func (s *Snapshot) DrawSolution(rng *rand.Rand) ([]Evidence, error) {
	solution := make([]Evidence, 0, len(SolutionSubtypes)*3)
	for _, category := range Categories() {
		for _, subtype := range SolutionSubtypes[category] {
			item, err := s.Random(rng, category, subtype)
			if err != nil {
				return nil, fmt.Errorf("draw solution: %w", err)
			}
			solution = append(solution, item)
		}
	}
	return solution, nil
}

// Size returns the number of evidence items in the snapshot.
func (s *Snapshot) Size() int {
	total := 0
	for _, group := range s.byGroup {
		total += len(group)
	}
	return total
}
