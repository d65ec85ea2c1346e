package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/ui"
)

const (
	AppID   = "com.ytget.image-converter"
	AppName = "Image Converter"

	WindowWidth  = 900
	WindowHeight = 700
)

// runGUI opens the desktop application and blocks until it quits
func runGUI() error {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LogoOrDefault())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		fmt.Printf("failed to ensure download dir: %v\n", err)
	}

	ui.NewRootUI(myWindow, myApp)

	myWindow.ShowAndRun()
	return nil
}
