// Package models declares the document shape of every collection plus
// the validated write payloads accepted over the public API.
package models

// Collection names. One collection per entity kind.
const (
	ColEventInfo      = "eventinfo"
	ColArtist         = "artist"
	ColExperienceZone = "experiencezone"
	ColTicketTier     = "tickettier"
	ColFaq            = "faq"
	ColTestimonial    = "testimonial"
	ColMediaItem      = "mediaitem"
	ColApplication    = "application"
	ColNewsletter     = "newsletter"
)

// EventInfo is the singleton core-event document, replaced wholesale on
// every upsert.
type EventInfo struct {
	Name      string            `bson:"name" json:"name"`
	Tagline   string            `bson:"tagline,omitempty" json:"tagline,omitempty"`
	DateISO   string            `bson:"date_iso" json:"date_iso"`
	Venue     string            `bson:"venue" json:"venue"`
	Address   string            `bson:"address" json:"address"`
	City      string            `bson:"city" json:"city"`
	Country   string            `bson:"country" json:"country"`
	TicketURL string            `bson:"ticket_url,omitempty" json:"ticket_url,omitempty"`
	Socials   map[string]string `bson:"socials" json:"socials"`
}

type Artist struct {
	Name      string            `bson:"name" json:"name"`
	Role      string            `bson:"role" json:"role"`
	Bio       string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Image     string            `bson:"image,omitempty" json:"image,omitempty"`
	Headliner bool              `bson:"headliner" json:"headliner"`
	Links     map[string]string `bson:"links" json:"links"`
}

type ExperienceZone struct {
	Title       string `bson:"title" json:"title"`
	Kind        string `bson:"kind" json:"kind"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

type TicketTier struct {
	Name      string   `bson:"name" json:"name"`
	Price     float64  `bson:"price" json:"price"`
	Currency  string   `bson:"currency" json:"currency"`
	Includes  []string `bson:"includes" json:"includes"`
	Available bool     `bson:"available" json:"available"`
}

type Faq struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

type Testimonial struct {
	Author string `bson:"author" json:"author"`
	Role   string `bson:"role,omitempty" json:"role,omitempty"`
	Quote  string `bson:"quote" json:"quote"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

type MediaItem struct {
	Kind  string `bson:"kind" json:"kind"`
	URL   string `bson:"url" json:"url"`
	Alt   string `bson:"alt,omitempty" json:"alt,omitempty"`
	Thumb string `bson:"thumb,omitempty" json:"thumb,omitempty"`
}

// Application is a visitor-submitted creator application. Status moves
// past "submitted" only through an admin process outside this service.
type Application struct {
	Name       string `bson:"name" json:"name"`
	Discipline string `bson:"discipline" json:"discipline"`
	Portfolio  string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Bio        string `bson:"bio,omitempty" json:"bio,omitempty"`
	Instagram  string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok     string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
	Twitter    string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Email      string `bson:"email" json:"email"`
	Status     string `bson:"status" json:"status"`
}

type Newsletter struct {
	Email  string `bson:"email" json:"email"`
	Name   string `bson:"name,omitempty" json:"name,omitempty"`
	Source string `bson:"source" json:"source"`
}

// Enumerated values. Closed sets; relationships between collections are
// by matching strings only, never referential.
const (
	RoleDJ           = "DJ"
	RoleLiveBand     = "Live Band"
	RoleVisualArtist = "Visual Artist"
	RolePerformer    = "Performer"

	ZoneLiveSet      = "Live Set"
	ZoneInstallation = "Installation"
	ZoneChill        = "Chill"
	ZoneVIP          = "VIP"

	TierEarlyBird        = "Early Bird"
	TierGeneralAdmission = "General Admission"
	TierVIP              = "VIP"
	TierBackstage        = "Backstage"

	MediaPhoto = "photo"
	MediaVideo = "video"

	DisciplineOther = "Other"

	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"

	SourceWebsite = "website"
)
