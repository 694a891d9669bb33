// Package catalog holds the challenge templates offered for scheduling and
// the demo schedule the planner starts with.
package catalog

import "github.com/akyairhashvil/ecoweek/internal/models"

// Default returns the built-in catalog. IDs are stable.
func Default() []models.ChallengeTemplate {
	return []models.ChallengeTemplate{
		{ID: 101, Title: "5-min shower", Icon: "shower", Points: 15, Description: "Limit your shower to 5 minutes to save water"},
		{ID: 102, Title: "Public transport", Icon: "bus", Points: 20, Description: "Use public transport instead of driving"},
		{ID: 103, Title: "Local produce", Icon: "basket", Points: 15, Description: "Buy only locally produced food"},
		{ID: 104, Title: "Repair something", Icon: "tools", Points: 10, Description: "Repair an item instead of replacing it"},
		{ID: 105, Title: "Plant a tree", Icon: "tree", Points: 30, Description: "Plant a tree in your community"},
		{ID: 106, Title: "Compost food", Icon: "recycle", Points: 15, Description: "Compost your food waste"},
		{ID: 107, Title: "Carpool", Icon: "car", Points: 15, Description: "Share a ride with others"},
		{ID: 108, Title: "Meat-free day", Icon: "carrot", Points: 20, Description: "Have a day without meat products"},
	}
}

// Find returns the template with the given id.
func Find(templates []models.ChallengeTemplate, id int) (models.ChallengeTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.ChallengeTemplate{}, false
}

func entry(id int, title, icon string, points int, completed bool) models.ScheduledChallenge {
	return models.ScheduledChallenge{
		ChallengeTemplate: models.ChallengeTemplate{ID: id, Title: title, Icon: icon, Points: points},
		Completed:         completed,
	}
}

// Seed returns the demo schedule for the week of June 9, 2025.
func Seed() map[models.DateKey][]models.ScheduledChallenge {
	return map[models.DateKey][]models.ScheduledChallenge{
		"2025-06-09": {
			entry(1, "Meatless Monday", "carrot", 15, false),
		},
		"2025-06-10": {
			entry(3, "Bike to work", "bicycle", 20, false),
			entry(4, "Use reusable coffee cup", "coffee", 10, true),
		},
		"2025-06-11": {
			entry(5, "Zero plastic day", "ban", 25, false),
		},
		"2025-06-12": {
			entry(7, "Energy saving mode", "bolt", 15, true),
		},
		"2025-06-13": {
			entry(9, "Digital detox evening", "mobile", 10, false),
		},
		"2025-06-14": {
			entry(11, "Beach cleanup", "trash", 30, false),
		},
		"2025-06-15": {
			entry(13, "Planetary diet", "leaf", 20, false),
		},
	}
}
