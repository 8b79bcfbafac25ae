// Package scheduler sends the daily reminder about food that is about to
// expire, together with recipe ideas that use it up.
package scheduler
