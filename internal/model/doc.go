package model

// Package model defines domain data structures used across the demo app:
// dismissible list items with stable identities that survive view
// recycling, and kind tags that mark rows as pinned or swipeable.
