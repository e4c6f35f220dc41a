package minigame

import "github.com/louisbranch/molehunt/internal/game/board"

// Word groups are sets of four confusable words; one of them becomes the
// solution the hosting player acts out or draws.

var pantomimeWords = map[board.Difficulty]map[string][][]string{
	board.DifficultyEasy: {
		"escape_route": {
			{"grotty_canal", "bright_way", "cold_street", "small_path"},
		},
		"escape_vehicle": {
			{"long_boat", "goofy_unicycle", "clean_carriage", "fancy_sled"},
		},
	},
	board.DifficultyMedium: {
		"escape_route": {
			{"grotty_canal", "bright_way", "cold_street", "small_path"},
		},
		"escape_vehicle": {
			{"long_boat", "goofy_unicycle", "clean_carriage", "fancy_sled"},
		},
	},
	board.DifficultyHard: {
		"escape_route": {
			{"grotty_canal", "bright_way", "cold_street", "small_path"},
		},
		"escape_vehicle": {
			{"long_boat", "goofy_unicycle", "clean_carriage", "fancy_sled"},
		},
	},
}

var drawingWords = map[board.Difficulty]map[string][][]string{
	board.DifficultyEasy: {
		"escape_route": {
			{"wide_canal", "wide_street", "dark_canal", "dark_street"},
		},
		"escape_vehicle": {
			{"long_boat", "long_train", "fast_boat", "fast_train"},
			{"old_unicycle", "old_bicycle", "new_unicycle", "new_bicycle"},
		},
		"approach": {
			{"comfortable_driving", "safe_flying", "brisk_walking", "fast_sliding"},
			{"creep_quiet", "crawl_flat", "climb_fast", "run_fast"},
		},
	},
	board.DifficultyMedium: {
		"danger": {
			{"heavy_hammer", "hard_pickaxe", "long_machete", "sharp_knife"},
			{"obstructed_path", "enraged_mob", "cunning_assassin", "impenetrable_assembly"},
		},
		"escape_route": {
			{"old_door", "old_gate", "decorated_door", "decorated_gate"},
		},
		"escape_vehicle": {
			{"expensive_carriage", "narrow_carriage", "expensive_carry", "narrow_carry"},
		},
	},
	board.DifficultyHard: {
		"danger": {
			{"spiky_wire_fence", "hidden_trap_door", "open_laces", "glass_lying_around"},
			{"loud_pistol", "quiet_silencer", "dangerous_murderer", "scary_follower"},
			{"nasty_traitor", "eavesdropping_snitch", "secret_pursuer", "stupid_agent"},
		},
		"discovery": {
			{"left_behind_note", "valid_ticket", "hidden_shortcut", "lost_letter"},
			{"hidden_postcard", "conspicuous_sign", "locked_chest", "inconspicuous_secret_door"},
			{"bushy_shelter", "high_lookout", "small_trench", "secret_hiding_place"},
			{"inconspicuous_clue", "public_evidence", "interesting_information", "false_trail"},
			{"big_magnifying_glass", "long_binoculars", "matching_monocle", "broken_glasses"},
		},
	},
}

func wordCatalog(kind board.MinigameKind) map[board.Difficulty]map[string][][]string {
	if kind == board.MinigameDrawing {
		return drawingWords
	}
	return pantomimeWords
}
