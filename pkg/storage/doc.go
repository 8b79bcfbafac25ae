// Package storage persists pantry, recipe and stats records for the bot.
// It wraps an embedded BadgerDB and stores values as JSON under string keys.
package storage
