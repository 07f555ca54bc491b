// Package temple serves the static temple directory. Entries carry fixed
// coordinates and darshan details; there is no geolocation or distance
// computation here.
package temple

import (
	"context"

	"github.com/omkaralabs/divinestore/internal/domain"
)

// DarshanStatus describes current darshan availability at a temple.
type DarshanStatus string

const (
	DarshanAvailable DarshanStatus = "available"
	DarshanCrowded   DarshanStatus = "crowded"
	DarshanClosed    DarshanStatus = "closed"
)

// Valid reports whether s is a known darshan status.
func (s DarshanStatus) Valid() bool {
	return s == DarshanAvailable || s == DarshanCrowded || s == DarshanClosed
}

// Timings holds a temple's opening windows.
type Timings struct {
	Morning string `json:"morning"`
	Evening string `json:"evening"`
}

// Coordinates is a fixed latitude/longitude pair for map display.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Temple is one directory entry.
type Temple struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Deity         string        `json:"deity"`
	Address       string        `json:"address"`
	DistanceKm    float64       `json:"distance"`
	Rating        float64       `json:"rating"`
	Image         string        `json:"image"`
	Timings       Timings       `json:"timings"`
	DarshanStatus DarshanStatus `json:"darshanStatus"`
	WaitTimeMins  int           `json:"waitTime"`
	Coordinates   Coordinates   `json:"coordinates"`
	Features      []string      `json:"features"`
}

// Directory lists and looks up temples.
type Directory interface {
	// List returns temples, optionally filtered by darshan status
	// (empty status matches all).
	List(ctx context.Context, status DarshanStatus) ([]Temple, error)

	// Get returns the temple with the given id.
	Get(ctx context.Context, id string) (*Temple, error)
}

type directory struct {
	temples []Temple
	byID    map[string]int
}

// NewDirectory creates a directory over the given temples.
func NewDirectory(temples []Temple) Directory {
	byID := make(map[string]int, len(temples))
	for i, t := range temples {
		byID[t.ID] = i
	}
	return &directory{temples: temples, byID: byID}
}

// NewDefaultDirectory creates a directory seeded with the stock temple data.
func NewDefaultDirectory() Directory {
	return NewDirectory(defaultTemples)
}

// List returns temples matching the status filter, in directory order.
func (d *directory) List(ctx context.Context, status DarshanStatus) ([]Temple, error) {
	if status != "" && !status.Valid() {
		return nil, domain.Invalid("temple.list", "unknown darshan status: "+string(status))
	}

	result := make([]Temple, 0, len(d.temples))
	for _, t := range d.temples {
		if status != "" && t.DarshanStatus != status {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// Get returns the temple with the given id.
func (d *directory) Get(ctx context.Context, id string) (*Temple, error) {
	i, ok := d.byID[id]
	if !ok {
		return nil, domain.NotFound("temple.get", "temple", id)
	}

	t := d.temples[i]
	return &t, nil
}
