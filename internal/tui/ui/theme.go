package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	MenuBarBg         tcell.Color
	MenuBarFg         tcell.Color
	MenuSelectedBg    tcell.Color
	MenuSelectedFg    tcell.Color
	MenuDisabledFg    tcell.Color
	MenuAccelColor    tcell.Color
	MnemonicColor     tcell.Color
	TabActiveFg       tcell.Color
	TabActiveBg       tcell.Color
	TabInactiveFg     tcell.Color
	TabInactiveBg     tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DefaultTheme returns a k9s-inspired dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorCadetBlue,
		BorderColor:       tcell.ColorDodgerBlue,
		BorderFocusColor:  tcell.ColorLightSkyBlue,
		MenuBarBg:         tcell.ColorNavy,
		MenuBarFg:         tcell.ColorWhite,
		MenuSelectedBg:    tcell.ColorAqua,
		MenuSelectedFg:    tcell.ColorBlack,
		MenuDisabledFg:    tcell.ColorGray,
		MenuAccelColor:    tcell.ColorPapayaWhip,
		MnemonicColor:     tcell.ColorOrange,
		TabActiveFg:       tcell.ColorBlack,
		TabActiveBg:       tcell.ColorOrange,
		TabInactiveFg:     tcell.ColorBlack,
		TabInactiveBg:     tcell.ColorAqua,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		TitleColor:        tcell.ColorFuchsia,
		CounterColor:      tcell.ColorPapayaWhip,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}
