package domain

type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusSold      ListingStatus = "sold"
)

// ListingType is the platform a number or account belongs to.
type ListingType string

const (
	TypeGoogleVoice ListingType = "Google Voice"
	TypeTextNow     ListingType = "TextNow"
	TypeTalkatone   ListingType = "Talkatone"
	TypeRing4       ListingType = "Ring4"
	TypeSideline    ListingType = "Sideline"
	TypeTextFree    ListingType = "TextFree"
	TypeTextPlus    ListingType = "TextPlus"
	TypeTextMe      ListingType = "TextMe"
	TypeDingtone    ListingType = "Dingtone"
	TypeGmailIphone ListingType = "Gmail/iPhone"
	TypeGVSetup     ListingType = "GV Setup"
	TypeOther       ListingType = "Other"
)

type Listing struct {
	ID         string        `json:"id"`
	Number     string        `json:"number"`
	Price      int           `json:"price"`
	Type       ListingType   `json:"type"`
	Year       int           `json:"year"`
	Status     ListingStatus `json:"status"`
	Rating     int           `json:"rating"`
	Tags       []string      `json:"tags,omitempty"`
	BuyEnabled bool          `json:"buy_enabled"`
}

// Buyable reports whether the buy action is offered. Sold status and the
// manual BuyEnabled switch are independent gates on the same action: a
// sold listing is never buyable, and an available one can still be
// switched off.
func (l *Listing) Buyable() bool {
	return l.Status != StatusSold && l.BuyEnabled
}

// Category groups listing types into the storefront filter tabs.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryGV       Category = "gv"
	CategoryApps     Category = "apps"
	CategoryBusiness Category = "biz"
	CategoryServices Category = "services"
)

var categoryTypes = map[Category][]ListingType{
	CategoryGV:       {TypeGoogleVoice, TypeGmailIphone, TypeGVSetup},
	CategoryApps:     {TypeTextNow, TypeTalkatone, TypeTextFree, TypeTextPlus, TypeTextMe, TypeDingtone},
	CategoryBusiness: {TypeRing4, TypeSideline},
	CategoryServices: {TypeOther},
}

// Matches reports whether a listing type belongs to the category. The
// empty category and "all" match everything; unknown categories match
// nothing.
func (c Category) Matches(t ListingType) bool {
	if c == CategoryAll || c == "" {
		return true
	}
	types, ok := categoryTypes[c]
	if !ok {
		return false
	}
	for _, ct := range types {
		if ct == t {
			return true
		}
	}
	return false
}
