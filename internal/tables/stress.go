package tables

// stressTable is the stress resolution table. Lower totals mean the crew
// member keeps it together; higher totals escalate into standing conditions.
var stressTable = Table{
	Type: TypeStress,
	Entries: []Entry{
		{
			Min: -999, Max: 3,
			ID:          "stress_steady",
			Label:       "Steady",
			Description: "You grit your teeth and keep working. No effect.",
			Severity:    1,
		},
		{
			Min: 4, Max: 5,
			ID:           "stress_tremble",
			Label:        "Trembling Hands",
			Description:  "Your hands shake. Fine manipulation suffers until the scene ends.",
			Severity:     2,
			Persistent:   true,
			DurationType: DurationScene,
		},
		{
			Min: 6, Max: 7,
			ID:          "stress_fumble",
			Label:       "Fumble",
			Description: "You drop whatever you are holding.",
			Severity:    2,
		},
		{
			Min: 8, Max: 9,
			ID:           "stress_tunnel_vision",
			Label:        "Tunnel Vision",
			Description:  "You fixate on the immediate threat and stop tracking your surroundings.",
			Severity:     3,
			Persistent:   true,
			DurationType: DurationScene,
		},
		{
			Min: 10, Max: 11,
			ID:           "stress_overload",
			Label:        "Sensory Overload",
			Description:  "Every alarm and shadow registers as a threat until the shift ends.",
			Severity:     3,
			Persistent:   true,
			DurationType: DurationShift,
			StressDelta:  1,
		},
		{
			Min: 12, Max: 13,
			ID:          "stress_freeze",
			Label:       "Freeze Up",
			Description: "You lock up for a moment, then snap back harder.",
			Severity:    4,
			StressDelta: 1,
			ApplyOptions: []ApplyOption{
				{EntryID: "stress_tremble", Label: "Shake it off trembling"},
				{EntryID: "stress_tunnel_vision", Label: "Narrow your focus instead"},
			},
		},
		{
			Min: 14, Max: 15,
			ID:            "stress_lash_out",
			Label:         "Lash Out",
			Description:   "You snap at the nearest crew member for the next round.",
			Severity:      4,
			Persistent:    true,
			DurationType:  DurationRound,
			DurationValue: 1,
		},
		{
			Min: 16, Max: 999,
			ID:           "stress_shutdown",
			Label:        "Shutdown",
			Description:  "You go through the motions on autopilot until someone talks you down.",
			Severity:     5,
			Persistent:   true,
			DurationType: DurationManual,
			StressDelta:  2,
		},
	},
}

// Stress returns the stress resolution table.
func Stress() Table {
	return stressTable
}
