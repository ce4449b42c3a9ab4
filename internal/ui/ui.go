package ui

import (
	"context"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
	"github.com/Wibias/Automatisiertes-Kopieren/internal/engine"
)

// KopierApp encapsulates the UI state, preferences, and the wiring into the
// report generation engine.
type KopierApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Workbooks engine.WorkbookOpener
	Forms     engine.FormWriter
	Clock     engine.Clock // Injected clock for testability

	SupportedLanguages []string

	settingsWindow fyne.Window
	generateBtn    *widget.Button
}

// NewKopierApp constructs the application and wires dependencies.
func NewKopierApp(a fyne.App, ctx context.Context, wb engine.WorkbookOpener, fw engine.FormWriter) *KopierApp {
	return &KopierApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Workbooks:          wb,
		Forms:              fw,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the main window and blocks until the application quits.
func (app *KopierApp) Run() {
	app.SetupI18n()

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.SetContent(app.buildForm())
	w.Resize(fyne.NewSize(520, 420))
	w.SetMaster()
	w.ShowAndRun()
}

// buildForm assembles the input mask: group, child, month, year, and the
// optional document checkboxes.
func (app *KopierApp) buildForm() fyne.CanvasObject {
	groupSelect := widget.NewSelect(config.Groups, nil)
	nameEntry := widget.NewEntry()
	monthSelect := widget.NewSelect(config.ReportMonths, nil)

	yearEntry := NewNumericalEntry()
	yearEntry.SetText(strconv.Itoa(app.Clock.Now().Year()))

	chkAllgemein := widget.NewCheck(app.GetMsg(config.TKeyChkAllgemein), nil)
	chkVorschul := widget.NewCheck(app.GetMsg(config.TKeyChkVorschul), nil)
	chkEltern := widget.NewCheck(app.GetMsg(config.TKeyChkEltern), nil)
	chkUebergang := widget.NewCheck(app.GetMsg(config.TKeyChkUebergang), nil)

	app.generateBtn = widget.NewButton(app.GetMsg(config.TKeyBtnGenerate), func() {
		req := engine.Request{
			Group:                  groupSelect.Selected,
			KidName:                nameEntry.Text,
			ReportMonth:            monthSelect.Selected,
			ReportYear:             yearEntry.Text,
			IncludeAllgemein:       chkAllgemein.Checked,
			IncludeVorschul:        chkVorschul.Checked,
			IncludeElterngespraech: chkEltern.Checked,
			IncludeUebergang:       chkUebergang.Checked,
		}
		app.generate(req)
	})

	settingsBtn := widget.NewButton(app.GetMsg(config.TKeyBtnSettings), func() {
		app.ShowSettingsWindow()
	})

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblGroup), groupSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblKidName), nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMonth), monthSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblYear), yearEntry),
	)

	docs := container.NewVBox(
		widget.NewLabel(app.GetMsg(config.TKeyLblDocuments)),
		chkAllgemein, chkVorschul, chkEltern, chkUebergang,
	)

	return container.NewVBox(
		form,
		docs,
		app.generateBtn,
		settingsBtn,
	)
}

// generate runs the pipeline off the UI thread and reports the outcome.
func (app *KopierApp) generate(req engine.Request) {
	app.generateBtn.Disable()

	gen := &engine.Generator{
		Clock:            app.Clock,
		Workbooks:        app.Workbooks,
		Forms:            app.Forms,
		HomeDir:          app.Preferences.String(config.PrefHomeDir),
		ConfirmOverwrite: app.confirmOverwrite,
	}

	go func() {
		res, err := gen.Run(app.Ctx, req)

		fyne.Do(func() {
			app.generateBtn.Enable()
			switch {
			case err != nil:
				slog.Error(config.ErrAppFailed,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err,
				)
				dialog.ShowInformation(app.GetMsg(config.TKeyTitleError), app.UserMessage(err), app.Window)
			case res.Successful():
				dialog.ShowInformation(app.GetMsg(config.TKeyTitleDone), app.GetMsg(config.TKeyMsgDone), app.Window)
			default:
				dialog.ShowInformation(app.GetMsg(config.TKeyTitlePartial), app.partialMessage(res), app.Window)
			}
		})
	}()
}

// confirmOverwrite asks the user whether an existing destination file may be
// replaced. It is called from the pipeline goroutine, so the dialog is
// scheduled on the UI thread and the answer awaited over a channel.
func (app *KopierApp) confirmOverwrite(dest string) bool {
	answer := make(chan bool)

	fyne.Do(func() {
		msg := app.localizeWithData(config.TKeyMsgOverwrite, map[string]interface{}{"File": dest})
		dialog.ShowConfirm(app.GetMsg(config.TKeyTitleOverwrite), msg, func(ok bool) {
			answer <- ok
		}, app.Window)
	})

	return <-answer
}

// UserMessage maps an engine error to its localized, non-technical text.
// These strings are deliberately not the logged technical messages.
func (app *KopierApp) UserMessage(err error) string {
	oe := engine.AsOpError(err)
	if oe == nil {
		return app.GetMsg(config.TKeyErrUnexpected)
	}

	switch oe.Kind {
	case engine.KindPrerequisiteMissing:
		return app.GetMsg(config.TKeyErrHomeUnset)
	case engine.KindNotFound:
		return app.GetMsg(config.TKeyErrNotFound)
	case engine.KindResourceBusy:
		return app.GetMsg(config.TKeyErrFileBusy)
	case engine.KindValidationFailure:
		if oe.Msg == config.ErrYearInvalid || oe.Msg == config.ErrYearOutOfRange {
			return app.GetMsg(config.TKeyErrYearRange)
		}
		return app.GetMsg(config.TKeyErrValidation)
	case engine.KindNameMismatch:
		return app.localizeWithData(config.TKeyErrNameMismatch, map[string]interface{}{
			"SheetName": oe.SheetName,
			"QueryName": oe.QueryName,
		})
	case engine.KindBandNotFound:
		return app.localizeWithData(config.TKeyErrBandNotFound, map[string]interface{}{
			"Value": strconv.FormatFloat(oe.Value, 'f', 2, 64),
		})
	case engine.KindExtraction:
		return app.GetMsg(config.TKeyErrNoAge)
	case engine.KindIOFailure:
		return app.GetMsg(config.TKeyErrIO)
	default:
		return app.GetMsg(config.TKeyErrUnexpected)
	}
}

// partialMessage summarizes a run that finished with recorded failures.
func (app *KopierApp) partialMessage(res *engine.RunResult) string {
	msg := app.GetMsg(config.TKeyMsgPartial)
	for _, f := range res.Failures() {
		if f.Err == nil {
			continue
		}
		msg += "\n• " + app.UserMessage(f.Err)
	}
	return msg
}

// localizeWithData translates a key with template data, falling back to the
// key itself so a missing translation never hides the dialog.
func (app *KopierApp) localizeWithData(key string, data map[string]interface{}) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
