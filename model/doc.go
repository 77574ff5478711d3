// Package model provides an in-memory collection of records addressed by a
// configurable primary key.
//
// Basic Usage:
//
//	heroes := model.New([]model.Record{
//	    {"id": 1, "name": "Joker"},
//	    {"name": "Harley"}, // receives a generated int64 id
//	})
//
//	joker, ok := heroes.Find(1)
//	heroes.Update(1, model.Record{"cape": true})
//
// Features:
//
//   - Insertion order is kept and seed data is normalised like later inserts
//   - Missing primary keys are generated per model (counter or snowflake)
//   - All, Find, Update and Filter hand out deep copies
//   - The primary key of a stored record never changes
//   - Optional bounded lookup cache and Prometheus operation counters
//   - Thread-safe with sync.RWMutex
package model
