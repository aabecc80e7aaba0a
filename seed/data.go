package seed

import "blazinvibe/models"

type contentSet struct {
	collection string
	docs       []any
}

// demoContent is the illustrative content inserted into empty
// collections. Applications, newsletter signups, and testimonials are
// never seeded; the first two come from visitors, the last from the
// admin process.
func demoContent() []contentSet {
	return []contentSet{
		{
			collection: models.ColEventInfo,
			docs: []any{
				models.EventInfo{
					Name:    "BlazinVibe Festival",
					Tagline: "One night. Every frequency.",
					DateISO: "2026-08-22T18:00:00Z",
					Venue:   "Harborline Warehouse",
					Address: "14 Dockside Ave",
					City:    "Rotterdam",
					Country: "Netherlands",
					Socials: map[string]string{
						"instagram": "https://instagram.com/blazinvibe",
						"tiktok":    "https://tiktok.com/@blazinvibe",
					},
				},
			},
		},
		{
			collection: models.ColArtist,
			docs: []any{
				models.Artist{
					Name:      "NovaPulse",
					Role:      models.RoleDJ,
					Bio:       "Peak-time techno with a melodic edge.",
					Headliner: true,
					Links:     map[string]string{"soundcloud": "https://soundcloud.com/novapulse"},
				},
				models.Artist{
					Name:      "The Ember Section",
					Role:      models.RoleLiveBand,
					Bio:       "Seven-piece brass-and-breaks outfit.",
					Headliner: false,
					Links:     map[string]string{},
				},
				models.Artist{
					Name:      "Lumen Drift",
					Role:      models.RoleVisualArtist,
					Bio:       "Projection-mapped light sculptures.",
					Headliner: false,
					Links:     map[string]string{},
				},
			},
		},
		{
			collection: models.ColExperienceZone,
			docs: []any{
				models.ExperienceZone{
					Title:       "Main Floor",
					Kind:        models.ZoneLiveSet,
					Description: "The big room. Headliners all night.",
				},
				models.ExperienceZone{
					Title:       "Mirror Maze",
					Kind:        models.ZoneInstallation,
					Description: "Infinity-mirror corridor with reactive sound.",
				},
				models.ExperienceZone{
					Title:       "Rooftop Garden",
					Kind:        models.ZoneChill,
					Description: "Ambient sets and city views.",
				},
			},
		},
		{
			collection: models.ColTicketTier,
			docs: []any{
				models.TicketTier{
					Name:      models.TierEarlyBird,
					Price:     39,
					Currency:  "USD",
					Includes:  []string{"Entry", "Welcome drink"},
					Available: false,
				},
				models.TicketTier{
					Name:      models.TierGeneralAdmission,
					Price:     59,
					Currency:  "USD",
					Includes:  []string{"Entry"},
					Available: true,
				},
				models.TicketTier{
					Name:      models.TierVIP,
					Price:     129,
					Currency:  "USD",
					Includes:  []string{"Entry", "VIP lounge", "Fast lane"},
					Available: true,
				},
			},
		},
		{
			collection: models.ColFaq,
			docs: []any{
				models.Faq{
					Question: "What time do doors open?",
					Answer:   "Doors open at 18:00; the first set starts at 19:00.",
					Category: "entry",
				},
				models.Faq{
					Question: "Is there an age limit?",
					Answer:   "The event is 18+. Bring a valid photo ID.",
					Category: "entry",
				},
				models.Faq{
					Question: "Can I get a refund?",
					Answer:   "Tickets are non-refundable but transferable until doors.",
					Category: "tickets",
				},
			},
		},
		{
			collection: models.ColMediaItem,
			docs: []any{
				models.MediaItem{
					Kind: models.MediaPhoto,
					URL:  "https://cdn.blazinvibe.example/gallery/mainfloor.jpg",
					Alt:  "Main floor at full capacity",
				},
				models.MediaItem{
					Kind:  models.MediaVideo,
					URL:   "https://cdn.blazinvibe.example/gallery/aftermovie.mp4",
					Thumb: "https://cdn.blazinvibe.example/gallery/aftermovie-thumb.jpg",
				},
			},
		},
	}
}
