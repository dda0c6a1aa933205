package model

import "time"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Point is a stored city position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Run is the persisted summary of one solve.
type Run struct {
	VersionedRecord
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Cities     int       `json:"cities"`
	Iterations int       `json:"iterations"`
	Seed       int64     `json:"seed"`
	RingSize   int       `json:"ring_size"`
	RingLength float64   `json:"ring_length"`
	Pruned     int       `json:"pruned"`
	TourCost   float64   `json:"tour_cost"`
	Tour       []int     `json:"tour"`
	Ring       []Point   `json:"ring,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ElapsedMS  int64     `json:"elapsed_ms"`
}
