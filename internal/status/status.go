package status

import (
	"stayadmin-service/internal/model"
)

// Variant is the badge style tag rendered next to a listing
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantSecondary   Variant = "secondary"
	VariantOutline     Variant = "outline"
)

// Badge is the derived lifecycle state of a listing
type Badge struct {
	Text    string  `json:"text"`
	Variant Variant `json:"variant"`
}

var (
	Occupied     = Badge{Text: "Occupied", Variant: VariantDestructive}
	Acknowledged = Badge{Text: "Acknowledged", Variant: VariantSecondary}
	Pending      = Badge{Text: "Pending", Variant: VariantOutline}
	Available    = Badge{Text: "Available", Variant: VariantDefault}
)

// ForRequests derives a listing's lifecycle state from its request rows.
// Precedence is fixed, first match wins: any confirmed request makes the
// listing Occupied; otherwise any requested flag makes it Acknowledged;
// otherwise a non-empty set is Pending; an empty or nil set is Available.
// The check is existential, so request order does not matter.
func ForRequests(requests []model.Request) Badge {
	if len(requests) == 0 {
		return Available
	}

	for _, r := range requests {
		if r.Confirmed {
			return Occupied
		}
	}

	for _, r := range requests {
		if r.Requested {
			return Acknowledged
		}
	}

	return Pending
}
