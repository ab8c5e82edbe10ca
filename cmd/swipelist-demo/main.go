package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/swipekit/swipelist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.swipekit.swipelist-demo"
	AppName = "Swipe Inbox"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
