package tables

// panicTable is the panic resolution table. Panic outcomes are mostly
// persistent conditions; duplicate results escalate forward at roll time.
var panicTable = Table{
	Type: TypePanic,
	Entries: []Entry{
		{
			Min: -999, Max: 6,
			ID:          "panic_keeping_together",
			Label:       "Keeping It Together",
			Description: "Your heart pounds but you stay in control. No effect.",
			Severity:    1,
		},
		{
			Min: 7, Max: 7,
			ID:           "panic_tremble",
			Label:        "Trembling",
			Description:  "You shake uncontrollably until the scene ends.",
			Severity:     2,
			Persistent:   true,
			DurationType: DurationScene,
		},
		{
			Min: 8, Max: 8,
			ID:          "panic_drop_gear",
			Label:       "Drop Gear",
			Description: "You fumble and drop your most important piece of equipment.",
			Severity:    2,
		},
		{
			Min: 9, Max: 9,
			ID:            "panic_scream",
			Label:         "Scream",
			Description:   "You let out a scream that rattles everyone within earshot.",
			Severity:      2,
			Persistent:    true,
			DurationType:  DurationRound,
			DurationValue: 1,
			StressDelta:   1,
		},
		{
			Min: 10, Max: 11,
			ID:           "panic_flee",
			Label:        "Flee",
			Description:  "You bolt for the nearest exit and keep running until you feel safe.",
			Severity:     3,
			Persistent:   true,
			DurationType: DurationScene,
			StressDelta:  -1,
			ApplyOptions: []ApplyOption{
				{EntryID: "panic_hide", Label: "Go to ground instead"},
				{EntryID: "panic_scream", Label: "Scream and run"},
			},
		},
		{
			Min: 12, Max: 12,
			ID:           "panic_hide",
			Label:        "Hide",
			Description:  "You find the nearest dark corner and refuse to leave it.",
			Severity:     3,
			Persistent:   true,
			DurationType: DurationScene,
			StressDelta:  -1,
		},
		{
			Min: 13, Max: 13,
			ID:            "panic_berserk",
			Label:         "Berserk",
			Description:   "You attack the closest thing, friend or not, for the next round.",
			Severity:      4,
			Persistent:    true,
			DurationType:  DurationRound,
			DurationValue: 1,
			StressDelta:   1,
		},
		{
			Min: 14, Max: 14,
			ID:           "panic_catatonic",
			Label:        "Catatonic",
			Description:  "You collapse and stop responding until someone brings you back.",
			Severity:     5,
			Persistent:   true,
			DurationType: DurationManual,
		},
		{
			Min: 15, Max: 999,
			ID:           "panic_collapse",
			Label:        "Total Collapse",
			Description:  "Your mind shuts the hatch. You are out of the fight until treated.",
			Severity:     5,
			Persistent:   true,
			DurationType: DurationManual,
			StressDelta:  2,
		},
	},
}

// Panic returns the panic resolution table.
func Panic() Table {
	return panicTable
}
