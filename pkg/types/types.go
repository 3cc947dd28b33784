// Package domain defines the core business types for the property market engine.
package domain

import (
	"slices"
	"strings"
	"time"
)

// PropertyType represents the category of real estate.
type PropertyType string

// Property type constants.
const (
	PropertyApartment  PropertyType = "apartment"
	PropertyVilla      PropertyType = "villa"
	PropertyCommercial PropertyType = "commercial"
	PropertyLand       PropertyType = "land"
	PropertyOther      PropertyType = "other"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyVilla, PropertyCommercial, PropertyLand, PropertyOther:
		return true
	}
	return false
}

// Status represents the analysis lifecycle of a property record.
type Status string

// Status constants.
const (
	StatusAnalyzing Status = "analyzing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusInactive  Status = "inactive"
)

// Condition represents the physical condition reported on a listing.
type Condition string

// Condition constants.
const (
	ConditionNew        Condition = "new"
	ConditionGood       Condition = "good"
	ConditionRenovation Condition = "needs_renovation"
	ConditionUnknown    Condition = ""
)

// Feature is a flag describing a notable amenity of a property.
type Feature string

// Feature constants.
const (
	FeatureElevator        Feature = "elevator"
	FeatureParking         Feature = "parking"
	FeatureNewConstruction Feature = "new_construction"
	FeatureFurnished       Feature = "furnished"
	FeatureGroundFloorShop Feature = "ground_floor_commercial"
	FeatureLargeLayout     Feature = "three_plus_bedrooms"
	FeatureSeaView         Feature = "sea_view"
)

// PropertyRecord is a listing as owned by the persistence layer. The engine
// reads it and never mutates it.
type PropertyRecord struct {
	ID           string       `json:"id"                     db:"id"`
	Title        string       `json:"title,omitempty"        db:"title"`
	Location     string       `json:"location"               db:"location"`
	Neighborhood string       `json:"neighborhood,omitempty" db:"neighborhood"`
	PropertyType PropertyType `json:"property_type"          db:"property_type"`

	// Pricing and size
	AskingPrice  float64 `json:"asking_price"  db:"asking_price"`
	TotalArea    float64 `json:"total_area"    db:"total_area"`
	InternalArea float64 `json:"internal_area" db:"internal_area"`

	// Attributes
	Condition  Condition `json:"condition,omitempty"   db:"condition"`
	FloorLevel string    `json:"floor_level,omitempty" db:"floor_level"`
	Bedrooms   int       `json:"bedrooms"              db:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"             db:"bathrooms"`
	Features   []Feature `json:"features,omitempty"    db:"features"`

	// Agent
	AgentName  string `json:"agent_name,omitempty"  db:"agent_name"`
	AgentEmail string `json:"agent_email,omitempty" db:"agent_email"`
	AgentPhone string `json:"agent_phone,omitempty" db:"agent_phone"`

	// Lifecycle
	Status      Status     `json:"status"                 db:"status"`
	IsActive    bool       `json:"is_active"              db:"is_active"`
	ListingDate *time.Time `json:"listing_date,omitempty" db:"listing_date"`
	RemovedAt   *time.Time `json:"removed_at,omitempty"   db:"removed_at"`
	CreatedAt   time.Time  `json:"created_at"             db:"created_at"`

	// Written back by analysis
	InvestmentScore *int            `json:"investment_score,omitempty" db:"investment_score"`
	Recommendation  *Recommendation `json:"recommendation,omitempty"   db:"recommendation"`
}

// LocationKey returns the normalized city or area key: the first
// comma-separated segment of Location, trimmed and lower-cased.
func (p *PropertyRecord) LocationKey() string {
	return NormalizeLocation(p.Location)
}

// KeyBlanks are the characters trimmed from location and agent keys. The
// store trims the same set with btrim(x, E' \t\r\n').
const KeyBlanks = " \t\r\n"

// NormalizeLocation reduces a free-text location to its lookup key.
func NormalizeLocation(location string) string {
	first, _, _ := strings.Cut(location, ",")
	return normalizeKey(first)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.Trim(s, KeyBlanks))
}

// UsableArea is the internal area when known, otherwise the total area.
func (p *PropertyRecord) UsableArea() float64 {
	if p.InternalArea > 0 {
		return p.InternalArea
	}
	if p.TotalArea > 0 {
		return p.TotalArea
	}
	return 0
}

// PricePerArea returns the asking price divided by the usable area, or 0
// when either is unknown.
func (p *PropertyRecord) PricePerArea() float64 {
	area := p.UsableArea()
	if area <= 0 || p.AskingPrice <= 0 {
		return 0
	}
	return p.AskingPrice / area
}

// ListedAt is the timestamp used for recency ordering and time windows.
func (p *PropertyRecord) ListedAt() time.Time {
	if p.ListingDate != nil && !p.ListingDate.IsZero() {
		return *p.ListingDate
	}
	return p.CreatedAt
}

// DaysOnMarket counts the days from listing until removal, or until now for
// live listings. It reports false when the record has no listing time.
func (p *PropertyRecord) DaysOnMarket(now time.Time) (float64, bool) {
	listed := p.ListedAt()
	if listed.IsZero() {
		return 0, false
	}
	end := now
	if p.RemovedAt != nil && !p.RemovedAt.IsZero() {
		end = *p.RemovedAt
	}
	return max(0, end.Sub(listed).Hours()/24), true
}

// FeatureFlags returns the explicit features plus those implied by the
// record's attributes, sorted and without duplicates.
func (p *PropertyRecord) FeatureFlags() []Feature {
	flags := slices.Clone(p.Features)
	if p.Condition == ConditionNew {
		flags = append(flags, FeatureNewConstruction)
	}
	if p.Bedrooms >= 3 {
		flags = append(flags, FeatureLargeLayout)
	}
	slices.Sort(flags)
	return slices.Compact(flags)
}

// HasFeature reports whether f is among the record's feature flags.
func (p *PropertyRecord) HasFeature(f Feature) bool {
	return slices.Contains(p.FeatureFlags(), f)
}

// Agent returns the normalized agent identity of the listing.
func (p *PropertyRecord) Agent() AgentIdentity {
	return AgentIdentity{
		Name:  normalizeKey(p.AgentName),
		Email: normalizeKey(p.AgentEmail),
	}
}

// AgentIdentity keys an agent's portfolio.
type AgentIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsZero reports whether no agent is attached.
func (a AgentIdentity) IsZero() bool {
	return a.Name == "" && a.Email == ""
}

// RentBenchmark is the location-level rent reference used for yield estimates.
type RentBenchmark struct {
	LocationKey  string    `json:"location_key"            db:"location_key"`
	RentPerArea  float64   `json:"rent_per_area"           db:"rent_per_area"`
	AverageYield *float64  `json:"average_yield,omitempty" db:"average_yield"`
	UpdatedAt    time.Time `json:"updated_at"              db:"updated_at"`
}
