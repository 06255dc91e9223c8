package model

// Package model defines the API response structures: video and audio format
// descriptors and the aggregated video metadata record. Structures are
// designed for direct JSON serialization and carry no behavior.
