package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// ShowSettingsWindow displays the configuration dialog: the home folder
// holding the report subtrees, and the UI language.
func (app *KopierApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus",
			config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w
	w.SetOnClosed(func() { app.settingsWindow = nil })

	pathEntry := widget.NewEntry()
	pathEntry.SetText(app.Preferences.String(config.PrefHomeDir))

	browseBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnBrowse), theme.FolderOpenIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			pathEntry.SetText(uri.Path())
		}, w)
	})

	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	langSelect.SetSelected(lang)

	saveBtn := widget.NewButton(app.GetMsg(config.TKeyBtnSave), func() {
		app.Preferences.SetString(config.PrefHomeDir, pathEntry.Text)
		app.Preferences.SetString(config.PrefLanguage, langSelect.Selected)
		app.UpdateLocalizer()
		w.Close()
	})
	cancelBtn := widget.NewButton(app.GetMsg(config.TKeyBtnCancel), func() {
		w.Close()
	})

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblHomeDir),
			container.NewBorder(nil, nil, nil, browseBtn, pathEntry)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), langSelect),
	)

	help := widget.NewLabel(app.GetMsg(config.TKeyHelpHomeDir))
	help.Wrapping = fyne.TextWrapWord

	w.SetContent(container.NewVBox(
		form,
		help,
		container.NewGridWithColumns(2, cancelBtn, saveBtn),
	))
	w.Resize(fyne.NewSize(560, 220))
	w.Show()
}
