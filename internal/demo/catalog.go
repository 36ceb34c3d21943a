package demo

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed photos.yml
var embeddedCatalog []byte

var defaultCatalog = mustLoadCatalog(embeddedCatalog)

// Photo is one entry of the static demo photo catalog.
type Photo struct {
	URL  string `yaml:"url" json:"url"`
	Alt  string `yaml:"alt" json:"alt"`
	Vibe Vibe   `yaml:"vibe" json:"vibe"`
}

// Catalog is a read-only set of photos bucketed by vibe.
type Catalog struct {
	photos []Photo
	byVibe map[Vibe][]Photo
}

type catalogFile struct {
	Photos []Photo `yaml:"photos"`
}

// LoadCatalog parses a YAML photo catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse photo catalog: %w", err)
	}
	return NewCatalog(file.Photos)
}

// NewCatalog buckets photos by vibe. Every photo needs a URL and a vibe.
func NewCatalog(photos []Photo) (*Catalog, error) {
	c := &Catalog{
		photos: make([]Photo, 0, len(photos)),
		byVibe: make(map[Vibe][]Photo),
	}
	for i, p := range photos {
		if p.URL == "" {
			return nil, fmt.Errorf("photo %d: %w", i, errors.New("url is required"))
		}
		if p.Vibe == "" {
			return nil, fmt.Errorf("photo %d (%s): %w", i, p.URL, errors.New("vibe is required"))
		}
		c.photos = append(c.photos, p)
		c.byVibe[p.Vibe] = append(c.byVibe[p.Vibe], p)
	}
	return c, nil
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Len reports the number of photos in the catalog.
func (c *Catalog) Len() int {
	return len(c.photos)
}

// Bucket returns the photos tagged with vibe. The slice must not be modified.
func (c *Catalog) Bucket(vibe Vibe) []Photo {
	return c.byVibe[vibe]
}

// PhotoFor picks the photo for an action. Actions whose vibe has no photos
// fall back to the normal bucket; an empty normal bucket yields the zero Photo.
func (c *Catalog) PhotoFor(action string, seed uint32, index int) Photo {
	bucket := c.Bucket(vibeForAction(action))
	if len(bucket) == 0 {
		bucket = c.Bucket(VibeNormal)
	}
	if len(bucket) == 0 {
		return Photo{}
	}
	return bucket[(uint64(seed)+uint64(index))%uint64(len(bucket))]
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}
