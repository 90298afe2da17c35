package models

// DefaultTopics is the standard question set seeded on first run when no
// topics document exists yet.
func DefaultTopics() map[string]*Topic {
	return map[string]*Topic{
		"iranian_collapse": {
			Title:    "Iranian Government Collapse",
			Question: "What is the likelihood of a collapse of the Iranian government in the next 3 months?",
			Horizon:  "3 months",
			KeyIndicators: []string{
				"Supreme Leader health/succession signals",
				"IRGC elite cohesion",
				"Protest frequency and size",
				"Economic conditions (sanctions impact, inflation)",
				"Regional isolation vs support",
			},
		},
		"venezuela_civil_war": {
			Title:    "Venezuela Civil War",
			Question: "What is the likelihood of civil war in Venezuela in the next 3 months?",
			Horizon:  "3 months",
			KeyIndicators: []string{
				"Military loyalty/fragmentation",
				"Opposition unity and capability",
				"Economic collapse severity",
				"External support (US, China, Russia)",
				"Humanitarian crisis scale",
			},
		},
		"ukraine_agreement": {
			Title:    "Russia-Ukraine Political Agreement",
			Question: "What is the likelihood of a durable political agreement in the Russian-Ukraine war in the next 3 months?",
			Horizon:  "3 months",
			KeyIndicators: []string{
				"Battlefield momentum",
				"Western military/financial support",
				"Russian domestic politics",
				"Ukrainian position (maximalist vs realist)",
				"Third-party mediation efforts",
			},
		},
		"taiwan_invasion": {
			Title:    "Taiwan Invasion",
			Question: "What is the likelihood of an invasion of Taiwan by China in the next 6 months?",
			Horizon:  "6 months",
			KeyIndicators: []string{
				"PLA readiness signals",
				"US commitment credibility",
				"CCP internal politics",
				"Taiwan domestic politics",
				"Economic costs assessment",
			},
		},
		"food_security_crisis": {
			Title:    "Global Food Security Crisis",
			Question: "What is the likelihood of two major agricultural regions facing harvest reduction due to extreme weather within 6 months?",
			Horizon:  "6 months",
			KeyIndicators: []string{
				"Climate event probability (ENSO, droughts)",
				"Key agricultural region status",
				"Existing food security stress",
				"Conflict disruption to agriculture",
				"Export restrictions/protectionism",
			},
		},
		"greenland_control": {
			Title:    "US Control of Greenland",
			Question: "What is the likelihood of the United States obtaining de facto political control of Greenland in the next 6 months?",
			Horizon:  "6 months",
			KeyIndicators: []string{
				"Trump administration policy signals",
				"Danish government response",
				"Greenlandic domestic politics",
				"NATO dynamics",
				"Chinese/Russian Arctic activity",
			},
		},
	}
}
