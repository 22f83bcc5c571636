// Package models defines client-side data models for the messaging core:
// conversation summaries, messages with their lifecycle status, and the
// authenticated user's profile.
package models
