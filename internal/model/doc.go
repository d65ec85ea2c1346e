package model

// Package model defines domain data structures used across the app: the
// selected source file, target formats, converted results, pipeline stages
// and user notifications. Structures are designed for direct use by the UI
// and explicit state transitions in the conversion pipeline.
