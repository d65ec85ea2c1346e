package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
)

// LandingScreen is the static marketing screen. Its only side effects are
// the placeholder notification and navigation to the converter.
type LandingScreen struct {
	loc             *Localization
	notifier        convert.Notifier
	onOpenConverter func()

	playBtn          *widget.Button
	getStartedBtn    *widget.Button
	openConverterBtn *widget.Button
	content          fyne.CanvasObject
}

// feature is one card of the features section
type feature struct {
	icon     string
	titleKey string
	descKey  string
}

var landingFeatures = []feature{
	{IconGames, KeyFeature1Title, KeyFeature1Desc},
	{IconTrophy, KeyFeature2Title, KeyFeature2Desc},
	{IconStar, KeyFeature3Title, KeyFeature3Desc},
}

// NewLandingScreen creates the landing screen
func NewLandingScreen(loc *Localization, notifier convert.Notifier, onOpenConverter func()) *LandingScreen {
	s := &LandingScreen{
		loc:             loc,
		notifier:        notifier,
		onOpenConverter: onOpenConverter,
	}
	s.createUI()
	return s
}

// Content returns the screen's root object
func (s *LandingScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *LandingScreen) createUI() {
	// Hero
	s.playBtn = widget.NewButtonWithIcon(s.loc.GetText(KeyPlayNow), theme.MediaPlayIcon(), s.onPlayNow)
	s.playBtn.Importance = widget.HighImportance

	hero := container.NewVBox(
		centeredText(s.loc.GetText(KeyHeroTitle), theme.SizeNameHeadingText, true),
		centeredText(s.loc.GetText(KeyHeroSubtitle), theme.SizeNameSubHeadingText, false),
		container.NewCenter(s.playBtn),
	)
	heroBg := canvas.NewVerticalGradient(ColorBrandBlush, theme.Color(theme.ColorNameBackground))

	// Features
	cards := make([]fyne.CanvasObject, 0, len(landingFeatures))
	for _, f := range landingFeatures {
		card := widget.NewCard(f.icon+" "+s.loc.GetText(f.titleKey), "", widget.NewLabel(s.loc.GetText(f.descKey)))
		cards = append(cards, card)
	}
	features := container.NewVBox(
		centeredText(s.loc.GetText(KeyFeaturesTitle), theme.SizeNameSubHeadingText, true),
		container.NewGridWithColumns(len(cards), cards...),
	)

	// Call to action
	s.getStartedBtn = widget.NewButton(s.loc.GetText(KeyGetStarted), s.onPlayNow)
	cta := container.NewVBox(
		centeredText(s.loc.GetText(KeyCTATitle), theme.SizeNameSubHeadingText, true),
		centeredText(s.loc.GetText(KeyCTASubtitle), theme.SizeNameText, false),
		container.NewCenter(s.getStartedBtn),
	)

	ctaBg := canvas.NewHorizontalGradient(ColorBrandPink, ColorBrandBlush)

	s.openConverterBtn = widget.NewButtonWithIcon(s.loc.GetText(KeyOpenConverter), theme.FileImageIcon(), func() {
		if s.onOpenConverter != nil {
			s.onOpenConverter()
		}
	})

	body := container.NewVBox(
		container.NewStack(heroBg, container.NewPadded(hero)),
		widget.NewSeparator(),
		container.NewPadded(features),
		widget.NewSeparator(),
		container.NewStack(ctaBg, container.NewPadded(cta)),
		container.NewCenter(s.openConverterBtn),
	)
	s.content = container.NewVScroll(body)
}

// onPlayNow shows the placeholder for the not yet available game
func (s *LandingScreen) onPlayNow() {
	if s.notifier != nil {
		s.notifier.Notify(model.ComingSoon)
	}
}

// centeredText creates a wrapped, centered rich text block
func centeredText(text string, size fyne.ThemeSizeName, bold bool) *widget.RichText {
	rt := widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignCenter,
			ColorName: theme.ColorNameForeground,
			SizeName:  size,
			TextStyle: fyne.TextStyle{Bold: bold},
		},
	})
	rt.Wrapping = fyne.TextWrapWord
	return rt
}
