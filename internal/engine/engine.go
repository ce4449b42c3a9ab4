package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// Request contains the validated-by-type (not yet by value) inputs from the
// UI layer for one generation run.
type Request struct {
	Group       string
	KidName     string
	ReportMonth string
	ReportYear  string

	IncludeAllgemein       bool
	IncludeVorschul        bool
	IncludeElterngespraech bool
	IncludeUebergang       bool
}

// Generator is the core service running the report pipeline. All side-effect
// boundaries are injected so tests can run the full pipeline against mocks
// and a temp directory.
type Generator struct {
	Clock     Clock
	Workbooks WorkbookOpener
	Forms     FormWriter
	HomeDir   string

	// ConfirmOverwrite is asked before an existing destination file is
	// replaced. A nil callback declines every overwrite.
	ConfirmOverwrite func(dest string) bool
}

// Run executes one generation: validate -> lookup -> resolve band -> build
// target path -> copy -> rename -> fill. Mandatory failures (prerequisites,
// validation, the age lookup, the target directory) return an error and halt;
// everything else is accumulated in the RunResult and the remaining
// independent steps continue.
func (g *Generator) Run(ctx context.Context, req Request) (*RunResult, error) {
	start := time.Now()
	res := &RunResult{}
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyGroup, req.Group,
		config.LogKeyKid, req.KidName,
	)
	log.Info(config.MsgRunStarted)

	name, err := g.validate(req)
	if err != nil {
		res.fail(StepValidate, err)
		return res, err
	}
	res.ok(StepValidate, name.String())

	rec, err := g.LookupAge(ctx, req.Group, name)
	if err != nil {
		res.fail(StepLookup, err)
		return res, err
	}
	res.Age = rec
	res.ok(StepLookup, fmt.Sprintf("%.2f", rec.AgeMonths))

	if err := ctx.Err(); err != nil {
		return res, err
	}

	band, bandOK := ResolveBand(rec.AgeMonths)
	if bandOK {
		res.Band = &band
		res.ok(StepBand, band.DirName())
		log.Info(config.MsgBandResolved,
			config.LogKeyAge, rec.AgeMonths,
			config.LogKeyBand, band.Months,
		)
	} else {
		// The run keeps going without a protocol sheet, but the final
		// status must reflect the miss, with the numeric value attached.
		bandErr := &OpError{Kind: KindBandNotFound, Msg: config.ErrBandNotFound, Value: rec.AgeMonths}
		log.Warn(config.MsgBandMiss, config.LogKeyAge, rec.AgeMonths)
		res.fail(StepBand, bandErr)
	}

	targetDir := BuildTargetPath(g.HomeDir, req.Group, req.KidName, req.ReportYear, req.ReportMonth)
	res.TargetDir = targetDir
	if err := os.MkdirAll(targetDir, config.DirPermDefault); err != nil {
		opErr := newError(KindIOFailure, config.ErrCreateDirFailed, err)
		res.fail(StepCopy, opErr)
		return res, opErr
	}

	g.copyTemplates(req, band, bandOK, targetDir, res, log)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	flags := RenameFlags{
		Allgemein: req.IncludeAllgemein,
		Vorschul:  req.IncludeVorschul,
		Protokoll: bandOK,
	}
	g.RenameKnownFiles(targetDir, req.KidName, req.ReportMonth, req.ReportYear, flags, band.Months, res)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	g.fillDocuments(ctx, req, rec, band, bandOK, targetDir, res)

	log.Info(config.MsgRunFinished,
		config.LogKeyOutcome, res.Successful(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return res, nil
}

// validate applies the input contract: configured home folder, known group,
// "First Last" kid name, non-empty month, 4-digit year within bounds.
func (g *Generator) validate(req Request) (PersonName, error) {
	if g.HomeDir == "" {
		return PersonName{}, newError(KindPrerequisiteMissing, config.ErrHomeDirUnset, nil)
	}

	if !knownGroup(req.Group) {
		return PersonName{}, newError(KindValidationFailure, config.ErrGroupUnknown,
			fmt.Errorf("%q", req.Group))
	}

	name, err := SplitKidName(req.KidName)
	if err != nil {
		return PersonName{}, err
	}

	if strings.TrimSpace(req.ReportMonth) == "" {
		return PersonName{}, newError(KindValidationFailure, config.ErrMonthEmpty, nil)
	}

	year := strings.TrimSpace(req.ReportYear)
	if len(year) != 4 {
		return PersonName{}, newError(KindValidationFailure, config.ErrYearInvalid,
			fmt.Errorf("%q", req.ReportYear))
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return PersonName{}, newError(KindValidationFailure, config.ErrYearInvalid, err)
	}
	if y < config.MinReportYear || y > config.MaxReportYear {
		return PersonName{}, newError(KindValidationFailure, config.ErrYearOutOfRange,
			fmt.Errorf("%d not in [%d, %d]", y, config.MinReportYear, config.MaxReportYear))
	}

	return name, nil
}

func knownGroup(group string) bool {
	for _, g := range config.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// copyTemplates brings the band's protocol sheet directory and the requested
// optional templates into targetDir. A missing optional template is a
// warning, not a failure.
func (g *Generator) copyTemplates(req Request, band AgeBand, bandOK bool, targetDir string, res *RunResult, log *slog.Logger) {
	if bandOK {
		bandDir := filepath.Join(g.HomeDir, config.DirTemplates, band.TemplateDir(), band.DirName())
		for _, cr := range g.CopyDirectory(bandDir, targetDir) {
			recordCopy(res, cr)
		}
	}

	type optional struct {
		include  bool
		template string
		destName string
	}
	// The renamer recognizes the general templates by their in-folder names,
	// so the copy step normalizes the dashed template filenames to those.
	optionals := []optional{
		{req.IncludeAllgemein, config.TemplateFileAllgemein, config.KnownNameAllgemein + ".pdf"},
		{req.IncludeVorschul, config.TemplateFileVorschul, config.KnownNameVorschul + ".pdf"},
		{req.IncludeElterngespraech, config.TemplateFileElterngespraech, config.TemplateFileElterngespraech},
		{req.IncludeUebergang, config.TemplateFileUebergang, config.TemplateFileUebergang},
	}

	for _, opt := range optionals {
		if !opt.include {
			continue
		}
		src := filepath.Join(g.HomeDir, config.DirTemplates, opt.template)
		if _, err := os.Stat(src); err != nil {
			log.Warn(config.MsgTemplateMiss, config.LogKeyFile, src, config.LogKeyError, err)
			res.warn(StepCopy, opt.template)
			continue
		}
		recordCopy(res, g.SafeCopy(src, filepath.Join(targetDir, opt.destName)))
	}
}

func recordCopy(res *RunResult, cr CopyResult) {
	switch cr.Outcome {
	case SkippedByUser:
		res.skip(StepCopy, cr.Dest)
	case CopyFailed:
		res.fail(StepCopy, cr.Err)
	default:
		res.ok(StepCopy, cr.Dest)
	}
}

// fillDocuments writes form fields into every document the run produced.
// Each fill failure is recorded individually; the rest continue.
func (g *Generator) fillDocuments(ctx context.Context, req Request, rec *AgeRecord, band AgeBand, bandOK bool, targetDir string, res *RunResult) {
	data := FormData{
		KidName:   req.KidName,
		Group:     req.Group,
		BirthDate: rec.BirthDate,
		Gender:    rec.Gender,
	}

	type target struct {
		name string
		tt   TemplateType
	}
	var targets []target

	if bandOK {
		dest, ok := DestFileName(band.BaseName(), req.KidName, req.ReportMonth, req.ReportYear,
			RenameFlags{Protokoll: true}, band.Months)
		if ok {
			targets = append(targets, target{dest, TemplateProtokollbogen})
		}
	}
	if req.IncludeAllgemein {
		dest, ok := DestFileName(config.KnownNameAllgemein+".pdf", req.KidName, req.ReportMonth, req.ReportYear,
			RenameFlags{Allgemein: true}, band.Months)
		if ok {
			targets = append(targets, target{dest, TemplateAllgemein})
		}
	}
	if req.IncludeVorschul {
		dest, ok := DestFileName(config.KnownNameVorschul+".pdf", req.KidName, req.ReportMonth, req.ReportYear,
			RenameFlags{Vorschul: true}, band.Months)
		if ok {
			targets = append(targets, target{dest, TemplateVorschul})
		}
	}
	if req.IncludeElterngespraech {
		targets = append(targets, target{config.TemplateFileElterngespraech, TemplateElterngespraech})
	}
	if req.IncludeUebergang {
		targets = append(targets, target{config.TemplateFileUebergang, TemplateKrippeUebergang})
	}

	for _, t := range targets {
		path := filepath.Join(targetDir, t.name)
		if _, err := os.Stat(path); err != nil {
			// Not copied (skipped or failed earlier); already accounted for.
			continue
		}
		if err := g.FillForm(ctx, path, t.tt, data); err != nil {
			res.fail(StepFill, err)
			continue
		}
		res.ok(StepFill, t.name)
	}
}
