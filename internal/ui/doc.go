package ui

// Package ui contains the Fyne-based demo interface for the swipe list
// widget. It wires a sample inbox of dismissible items to the widget,
// renders row content, and exposes a settings dialog for tuning the
// gesture thresholds at runtime.
