// Package demo synthesizes stable, region-seeded dog profiles used to fill
// the swipe feed when a region has no real profiles yet.
package demo

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameRetries  = 10
	traitPicks      = 3
	verifiedChance  = 0.4
	lastActiveRange = 6 * time.Hour
	minDistance     = 0.3
	distanceSpan    = 24.6
	maxAge          = 12
)

// Profile is a synthesized dog profile. Every field except ID is derived from
// the region seed and the generator's clock.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Breed         string    `json:"breed"`
	Size          Size      `json:"size"`
	DistanceMiles float64   `json:"distance_miles"`
	Neighborhood  string    `json:"neighborhood"`
	Action        string    `json:"action"`
	About         string    `json:"about"`
	Traits        []string  `json:"traits"`
	PhotoURL      string    `json:"photo_url"`
	PhotoAlt      string    `json:"photo_alt"`
	LastActive    time.Time `json:"last_active"`
	Verified      bool      `json:"verified"`
}

// Generator builds demo profiles from a photo catalog and a clock.
type Generator struct {
	catalog *Catalog
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewGenerator returns a generator over catalog. A nil catalog uses the
// embedded one; a nil clock uses time.Now.
func NewGenerator(catalog *Catalog, now func() time.Time) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		catalog: catalog,
		now:     now,
		newID:   uuid.New,
	}
}

var defaultGenerator = NewGenerator(nil, nil)

// ProfilesForRegion generates count profiles for regionKey with the default
// generator.
func ProfilesForRegion(regionKey string, count int) []Profile {
	return defaultGenerator.ProfilesForRegion(regionKey, count)
}

// ProfilesForRegion generates count profiles for regionKey. The same key and
// count always produce the same names, breeds, photos and so on; only IDs are
// fresh. Callers must pass count >= 0.
func (g *Generator) ProfilesForRegion(regionKey string, count int) []Profile {
	if count < 0 {
		count = 0
	}
	return g.profilesForSeed(HashStringToInt(regionKey), count)
}

func (g *Generator) profilesForSeed(seed uint32, count int) []Profile {
	rng := Mulberry32(seed)
	now := g.now().UTC()

	usedNames := make(map[string]struct{}, count)
	profiles := make([]Profile, 0, count)
	for i := 0; i < count; i++ {
		name := pick(rng, dogNames)
		for tries := 0; tries < maxNameRetries; tries++ {
			if _, used := usedNames[name]; !used {
				break
			}
			name = pick(rng, dogNames)
		}
		usedNames[name] = struct{}{}

		age := 1 + int(math.Floor(rng()*maxAge))
		breed := pick(rng, dogBreeds)
		size := pick(rng, dogSizes)
		distance := math.Round((minDistance+rng()*distanceSpan)*10) / 10
		neighborhood := pick(rng, neighborhoods)
		traits := pickTraits(rng)
		action := pick(rng, dogActions)
		verified := rng() < verifiedChance
		lastActive := now.Add(-time.Duration(rng() * float64(lastActiveRange))).Truncate(time.Millisecond)

		photo := g.catalog.PhotoFor(action, seed, i)
		profiles = append(profiles, Profile{
			ID:            g.newID(),
			Name:          name,
			Age:           age,
			Breed:         breed,
			Size:          size,
			DistanceMiles: distance,
			Neighborhood:  neighborhood,
			Action:        action,
			About:         aboutForAction(action),
			Traits:        traits,
			PhotoURL:      photo.URL,
			PhotoAlt:      photo.Alt,
			LastActive:    lastActive,
			Verified:      verified,
		})
	}
	return profiles
}

// pickTraits draws three traits and keeps the distinct ones in draw order.
func pickTraits(rng func() float64) []string {
	seen := make(map[string]struct{}, traitPicks)
	traits := make([]string, 0, traitPicks)
	for i := 0; i < traitPicks; i++ {
		t := pick(rng, dogTraits)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		traits = append(traits, t)
	}
	return traits
}

func pick[T any](rng func() float64, items []T) T {
	return items[int(rng()*float64(len(items)))]
}
