// Package geo has the values the example server compares.
package geo

//go:generate go run github.com/bcliden/floateq/cmd/floateq

// Position is a point on the globe in degrees.
//
//floateq:derive ulps_epsilon="PositionUlps" debug_ulps_diff="PositionDebugUlpsDiff" all_epsilon="float64"
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Fix is a position reported by a receiver, with its altitude in meters.
//
//floateq:derive ulps_epsilon="FixUlps" debug_ulps_diff="FixDebugUlpsDiff" all_epsilon="float64"
type Fix struct {
	Pos Position `json:"pos"`
	Alt float64  `json:"alt"`
}

// Route is a fixed number of waypoints.
//
//floateq:derive ulps_epsilon="RouteUlps" debug_ulps_diff="RouteDebugUlpsDiff" all_epsilon="float64"
type Route [4]Position
