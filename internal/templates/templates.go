// Package templates holds the built-in message template table. The
// effective catalog is built once at startup by merging the defaults with
// configured overrides through a pure function; there is no shared mutable
// global to patch.
package templates

import "sort"

type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Catalog maps template id to template.
type Catalog map[string]Template

// Default returns a fresh copy of the built-in template table.
func Default() Catalog {
	return Catalog{
		"welcome": {
			ID:       "welcome",
			Name:     "Welcome Message",
			Content:  "Welcome to our service! We're excited to help you grow your business.",
			Category: "onboarding",
		},
		"follow_up": {
			ID:       "follow_up",
			Name:     "Follow Up",
			Content:  "Hi {customer_name}, just checking in to see how things are going. Let me know if you need any assistance!",
			Category: "follow_up",
		},
		"promotion": {
			ID:       "promotion",
			Name:     "Special Offer",
			Content:  "Special offer just for you! Get 20% off on our premium services. Valid until {date}.",
			Category: "promotion",
		},
		"referral_request": {
			ID:       "referral_request",
			Name:     "Referral Request",
			Content:  "Hi {customer_name}, if you're happy with our service, would you mind referring us to your friends? You'll earn rewards for each successful referral!",
			Category: "referral",
		},
		"appointment_reminder": {
			ID:       "appointment_reminder",
			Name:     "Appointment Reminder",
			Content:  "Reminder: You have an appointment scheduled for {date} at {time}. Looking forward to meeting you!",
			Category: "reminder",
		},
	}
}

// Merge returns a new catalog with override content applied on top of base
// by template id. Neither input is modified; overrides for unknown ids are
// ignored.
func Merge(base Catalog, overrides map[string]string) Catalog {
	out := make(Catalog, len(base))
	for id, t := range base {
		if content, ok := overrides[id]; ok {
			t.Content = content
		}
		out[id] = t
	}
	return out
}

// List returns the catalog as a slice sorted by id, for stable API output.
func (c Catalog) List() []Template {
	out := make([]Template, 0, len(c))
	for _, t := range c {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
