package catalog

// SeedEvidence is the reference evidence set loaded by the seed command.
func SeedEvidence() []Evidence {
	return []Evidence{
		// Weapon
		{Name: "knife", Category: CategoryWeapon, Subtype: SubtypeObject},
		{Name: "axe", Category: CategoryWeapon, Subtype: SubtypeObject},
		{Name: "pistol", Category: CategoryWeapon, Subtype: SubtypeObject},
		{Name: "hammer", Category: CategoryWeapon, Subtype: SubtypeObject},
		{Name: "bronze", Category: CategoryWeapon, Subtype: SubtypeColor},
		{Name: "copper", Category: CategoryWeapon, Subtype: SubtypeColor},
		{Name: "brass", Category: CategoryWeapon, Subtype: SubtypeColor},
		{Name: "silver", Category: CategoryWeapon, Subtype: SubtypeColor},
		{Name: "brand_new", Category: CategoryWeapon, Subtype: SubtypeCondition},
		{Name: "well_kept", Category: CategoryWeapon, Subtype: SubtypeCondition},
		{Name: "worn_out", Category: CategoryWeapon, Subtype: SubtypeCondition},

		// Crime scene
		{Name: "lake", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "cave", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "butchery", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "cemetery", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "bridge", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "sewers", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "forest", Category: CategoryCrimeScene, Subtype: SubtypeLocation},
		{Name: "icy", Category: CategoryCrimeScene, Subtype: SubtypeTemperature},
		{Name: "cold", Category: CategoryCrimeScene, Subtype: SubtypeTemperature},
		{Name: "hot", Category: CategoryCrimeScene, Subtype: SubtypeTemperature},
		{Name: "muggy", Category: CategoryCrimeScene, Subtype: SubtypeTemperature},
		{Name: "west_end", Category: CategoryCrimeScene, Subtype: SubtypeDistrict},
		{Name: "westminster", Category: CategoryCrimeScene, Subtype: SubtypeDistrict},

		// Offender
		{Name: "coat", Category: CategoryOffender, Subtype: SubtypeClothing},
		{Name: "hat", Category: CategoryOffender, Subtype: SubtypeClothing},
		{Name: "cape", Category: CategoryOffender, Subtype: SubtypeClothing},
		{Name: "suit", Category: CategoryOffender, Subtype: SubtypeClothing},
		{Name: "tiny", Category: CategoryOffender, Subtype: SubtypeSize},
		{Name: "short", Category: CategoryOffender, Subtype: SubtypeSize},
		{Name: "average", Category: CategoryOffender, Subtype: SubtypeSize},
		{Name: "tall", Category: CategoryOffender, Subtype: SubtypeSize},
		{Name: "huge", Category: CategoryOffender, Subtype: SubtypeSize},
		{Name: "scar", Category: CategoryOffender, Subtype: SubtypeCharacteristic},
		{Name: "wig", Category: CategoryOffender, Subtype: SubtypeCharacteristic},
		{Name: "tattoo", Category: CategoryOffender, Subtype: SubtypeCharacteristic},
		{Name: "signet_ring", Category: CategoryOffender, Subtype: SubtypeCharacteristic},
		{Name: "birthmark", Category: CategoryOffender, Subtype: SubtypeCharacteristic},

		// Time of crime
		{Name: "monday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "tuesday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "wednesday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "thursday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "friday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "saturday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "sunday", Category: CategoryTimeOfCrime, Subtype: SubtypeWeekday},
		{Name: "am", Category: CategoryTimeOfCrime, Subtype: SubtypeDaytime},
		{Name: "pm", Category: CategoryTimeOfCrime, Subtype: SubtypeDaytime},
		{Name: "2", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},
		{Name: "4", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},
		{Name: "6", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},
		{Name: "8", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},
		{Name: "10", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},
		{Name: "12", Category: CategoryTimeOfCrime, Subtype: SubtypeTime},

		// Means of escape
		{Name: "automobile", Category: CategoryMeansOfEscape, Subtype: SubtypeModel},
		{Name: "carriage", Category: CategoryMeansOfEscape, Subtype: SubtypeModel},
		{Name: "penny_farthing", Category: CategoryMeansOfEscape, Subtype: SubtypeModel},
		{Name: "horse", Category: CategoryMeansOfEscape, Subtype: SubtypeModel},
		{Name: "black", Category: CategoryMeansOfEscape, Subtype: SubtypeColor},
		{Name: "white", Category: CategoryMeansOfEscape, Subtype: SubtypeColor},
		{Name: "chestnut", Category: CategoryMeansOfEscape, Subtype: SubtypeColor},
		{Name: "rust_red", Category: CategoryMeansOfEscape, Subtype: SubtypeColor},
		{Name: "north", Category: CategoryMeansOfEscape, Subtype: SubtypeEscapeRoute},
		{Name: "east", Category: CategoryMeansOfEscape, Subtype: SubtypeEscapeRoute},
		{Name: "south", Category: CategoryMeansOfEscape, Subtype: SubtypeEscapeRoute},
		{Name: "west", Category: CategoryMeansOfEscape, Subtype: SubtypeEscapeRoute},
	}
}

// SeedWouldYouRatherPairs is the reference prompt set loaded by the seed command.
func SeedWouldYouRatherPairs() []WouldYouRatherPair {
	return []WouldYouRatherPair{
		{A: "be invisible", B: "be able to fly"},
		{A: "know when you die", B: "know how you die"},
		{A: "travel to outer space", B: "travel to the bottom of the ocean"},
		{A: "travel 100 years into the past", B: "travel 100 years into the future"},
		{A: "be rich", B: "be immortal"},
		{A: "talk to animals", B: "speak every language"},
		{A: "be poor and love your job", B: "be rich and hate your job"},
		{A: "be unable to lie", B: "believe every lie"},
		{A: "be free", B: "be safe"},
	}
}
