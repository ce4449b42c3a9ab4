package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Automatisiertes Kopieren"
	AppID       = "com.github.wibias.automatisiertes-kopieren"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ for the app cache directory.
	DirPermUserRWX fs.FileMode = 0700

	// DirPermDefault is used for report directories shared with other tools.
	DirPermDefault fs.FileMode = 0755
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefHomeDir  = "home_dir"
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
// German is the working language of the Kita staff; English is the bundle default.
var SupportedLanguages = []string{"de", "en"}

const DefaultLanguage = "de"

// -----------------------------------------------------------------------------
// Groups & Report Months
// -----------------------------------------------------------------------------

// Groups is the fixed set of Kita groups. The UI offers exactly these;
// the engine rejects anything else.
var Groups = []string{"Bären", "Löwen", "Schnecken"}

// ReportMonths lists the selectable report months (German).
var ReportMonths = []string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Report year bounds. Years outside this window are a validation failure.
const (
	MinReportYear = 2023
	MaxReportYear = 2099
)

// -----------------------------------------------------------------------------
// Directory & File Conventions
// -----------------------------------------------------------------------------

const (
	// DirReports is the subtree holding per-child report folders.
	DirReports = "Entwicklungsberichte"

	// DirTemplates is the subtree holding the blank form templates.
	DirTemplates = "Entwicklungsboegen"

	// Age-band template subdirectories.
	TemplateDirKrippe = "Krippe"
	TemplateDirEle    = "Ele"

	// FormatGroupDir is the per-group workbook directory: "<Group> Entwicklungsberichte".
	FormatGroupDir = "%s " + DirReports

	// FormatWorkbookName is the group workbook filename, keyed by short group code.
	FormatWorkbookName = "Monatsrechner-Kinder-Zielsetzung-%s.xlsm"

	// FormatBandDir is the per-band template directory name, e.g. "12_Monate".
	FormatBandDir = "%d_Monate"

	// FormatBandBaseName is the blank protocol sheet inside a band directory.
	FormatBandBaseName = "Kind_Protokollbogen_%d_Monate.pdf"

	// General-purpose template files directly under DirTemplates.
	TemplateFileAllgemein       = "Allgemeiner-Entwicklungsbericht.pdf"
	TemplateFileVorschul        = "Vorschul-Entwicklungsbericht.pdf"
	TemplateFileElterngespraech = "Protokoll-Elterngespraech.pdf"
	TemplateFileUebergang       = "Krippe-Uebergangsbericht.pdf"

	// Known source base names recognized by the renamer.
	KnownNameAllgemein   = "Allgemeiner Entwicklungsbericht"
	KnownNameVorschul    = "Vorschulentwicklungsbericht"
	KnownPrefixProtokoll = "Kind_Protokollbogen_"

	// Destination filename conventions. All substitutions are deterministic.
	FormatDestAllgemein = "%s_Entwicklungsbericht_Allgemein_%s_%s%s" // kid, month, year, ext
	FormatDestVorschul  = "%s_Entwicklungsbericht_Vorschule_%s_%s%s" // kid, month, year, ext
	FormatDestProtokoll = "%s_Protokollbogen_%d_Monate_%s_%s%s"      // kid, months, month, year, ext

	// Backup naming for SafeCopy overwrites.
	FormatBackupName    = "%s_%s.bak"    // timestamp, original name
	FormatBackupCollide = "%s_%s-%d.bak" // timestamp, original name, counter
	TimestampFormat     = "20060102150405"

	// TempFillSuffix marks the sibling file a form fill writes before the swap.
	TempFillSuffix = ".filling"
)

// -----------------------------------------------------------------------------
// Workbook Layout
// -----------------------------------------------------------------------------

const (
	SheetMonths = "Monatsrechner"
	SheetNames  = "NAMES-BIRTHDAYS-FILL-IN"

	// Monatsrechner row window and columns (1-based, as in the workbook).
	MonthsRowFirst    = 7
	MonthsRowLast     = 31
	MonthsColLastName = 3
	MonthsColFirst    = 4
	MonthsColBirth    = 5
	MonthsColAge      = 6

	// NAMES-BIRTHDAYS-FILL-IN row window and columns.
	NamesRowFirst    = 4
	NamesRowLast     = 28
	NamesColLastName = 3
	NamesColFirst    = 4
	NamesColGender   = 8
)

// -----------------------------------------------------------------------------
// Matching & Banding
// -----------------------------------------------------------------------------

const (
	// NameDistanceMax is the edit-distance threshold at or below which two
	// unequal names are treated as "the same person, misspelled".
	NameDistanceMax = 2

	// Supported age domain in months.days notation.
	BandDomainMin = 10.15
	BandDomainMax = 84.00

	// Bands starting at or above this value use the Ele template directory.
	EleBandThreshold = 39.15
)

// -----------------------------------------------------------------------------
// Date Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatReport is the dd.MM.yyyy format used in all filled forms.
	DateFormatReport = "02.01.2006"

	// Additional layouts accepted when parsing birth-date cells.
	DateFormatISO      = "2006-01-02"
	DateFormatUSShort  = "01-02-06"
	DateFormatSlash    = "02/01/2006"
	DateFormatDotShort = "2.1.2006"
)

// -----------------------------------------------------------------------------
// PDF Form Fields
// -----------------------------------------------------------------------------

const (
	FieldKidName   = "Name_des_Kindes"
	FieldBirthDate = "Geburtsdatum"
	FieldGroup     = "Gruppe"
	FieldToday     = "Heutiges_Datum"
	FieldGenderM   = "Geschlecht_m"
	FieldGenderW   = "Geschlecht_w"

	FieldValueOn  = "On"
	FieldValueOff = "Off"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyLblGroup       = "lbl_group"
	TKeyLblKidName     = "lbl_kid_name"
	TKeyLblMonth       = "lbl_month"
	TKeyLblYear        = "lbl_year"
	TKeyLblDocuments   = "lbl_documents"
	TKeyChkAllgemein   = "chk_allgemein"
	TKeyChkVorschul    = "chk_vorschul"
	TKeyChkEltern      = "chk_eltern"
	TKeyChkUebergang   = "chk_uebergang"
	TKeyBtnGenerate    = "btn_generate"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnBrowse      = "btn_browse"
	TKeyBtnSettings    = "btn_settings"
	TKeyLblHomeDir     = "lbl_home_dir"
	TKeyHelpHomeDir    = "help_home_dir"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyTitleDone      = "title_done"
	TKeyTitlePartial   = "title_partial"
	TKeyTitleError     = "title_error"
	TKeyTitleOverwrite = "title_overwrite"
	TKeyMsgDone        = "msg_done"
	TKeyMsgPartial     = "msg_partial"
	TKeyMsgOverwrite   = "msg_overwrite" // Requires File

	// One user-facing message per error kind. These are deliberately distinct
	// from the technical log strings.
	TKeyErrHomeUnset    = "err_home_unset"
	TKeyErrNotFound     = "err_not_found"
	TKeyErrFileBusy     = "err_file_busy"
	TKeyErrValidation   = "err_validation"
	TKeyErrYearRange    = "err_year_range"
	TKeyErrNameMismatch = "err_name_mismatch" // Requires SheetName, QueryName
	TKeyErrBandNotFound = "err_band_not_found" // Requires Value
	TKeyErrNoAge        = "err_no_age"
	TKeyErrIO           = "err_io"
	TKeyErrUnexpected   = "err_unexpected"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrHomeDirUnset     = "prerequisite missing: home folder is not configured"
	ErrWorkbookMissing  = "workbook file not found"
	ErrWorkbookLocked   = "workbook is locked by another process"
	ErrWorkbookOpen     = "failed to open workbook"
	ErrNameMismatch     = "similar but unequal names found, needs human correction"
	ErrNoAgeExtracted   = "no age value extracted after full scan"
	ErrBandNotFound     = "age value outside the supported band table"
	ErrBandTableInvalid = "age band table is invalid"
	ErrYearInvalid      = "report year must be a 4-digit number"
	ErrYearOutOfRange   = "report year out of supported range"
	ErrKidNameInvalid   = "kid name must be given as \"First Last\""
	ErrGroupUnknown     = "unknown group"
	ErrMonthEmpty       = "report month must not be empty"
	ErrNoFormFields     = "document contains no form fields"
	ErrFieldMissing     = "form field missing in document"
	ErrFillFailed       = "failed to fill form fields"
	ErrSwapFailed       = "failed to swap filled document into place"
	ErrCopyFailed       = "failed to copy file"
	ErrBackupFailed     = "failed to back up existing file"
	ErrRenameFailed     = "failed to rename file"
	ErrCreateDirFailed  = "failed to create target directory"
	ErrReadDirFailed    = "failed to read directory"
	ErrCellRead         = "failed to read worksheet cell"
	ErrDateParse        = "unable to parse birth date cell"
	ErrAgeParse         = "unable to parse age cell"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateCacheDir   = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgRunStarted    = "Report generation started"
	MsgRunFinished   = "Report generation finished"
	MsgRowSkipped    = "Skipping row with blank name cell"
	MsgExactMatch    = "Exact name match"
	MsgGenderFound   = "Gender resolved"
	MsgBandResolved  = "Age band resolved"
	MsgBandMiss      = "No age band for value"
	MsgFileRenamed   = "File renamed"
	MsgFileCopied    = "File copied"
	MsgFileBackedUp  = "Existing file backed up"
	MsgCopySkipped   = "Copy skipped by user"
	MsgFormFilled    = "Form fields written"
	MsgTemplateMiss  = "Optional template missing, continuing"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyGroup     = "group"
	LogKeyKid       = "kid"
	LogKeyRow       = "row"
	LogKeySheet     = "sheet"
	LogKeyValue     = "value"
	LogKeyAge       = "age_months"
	LogKeyBand      = "band_months"
	LogKeyGender    = "gender"
	LogKeySource    = "source"
	LogKeyDest      = "dest"
	LogKeyStep      = "step"
	LogKeyOutcome   = "outcome"
	LogKeyDuration  = "duration_ms"
	LogKeyQuery     = "query_name"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompSheet  = "sheet"
	CompFiles  = "files"
	CompFiller = "filler"
	CompXlsx   = "xlsx"
	CompPDF    = "pdf"
	CompMain   = "main"
	CompI18n   = "i18n"
)
