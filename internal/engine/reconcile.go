package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// CopyOutcome describes what SafeCopy did with one file.
type CopyOutcome int

const (
	CopyFailed CopyOutcome = iota
	Copied
	BackedUpAndCopied
	SkippedByUser
)

func (o CopyOutcome) String() string {
	switch o {
	case Copied:
		return "copied"
	case BackedUpAndCopied:
		return "backed_up_and_copied"
	case SkippedByUser:
		return "skipped_by_user"
	default:
		return "failed"
	}
}

// CopyResult records one SafeCopy operation for the run summary.
type CopyResult struct {
	Source  string
	Dest    string
	Outcome CopyOutcome
	Err     error
}

// RenameFlags selects which of the known template files may be renamed.
type RenameFlags struct {
	Allgemein bool
	Vorschul  bool
	Protokoll bool
}

var germanTitle = cases.Title(language.German)

// TitleCase normalizes a path component the way the folder tree expects it.
func TitleCase(s string) string {
	return germanTitle.String(strings.TrimSpace(s))
}

// BuildTargetPath derives the per-child report directory:
// <home>/Entwicklungsberichte/<Group>/<KidName>/<Year>/<Month>.
func BuildTargetPath(home, group, kidName, reportYear, reportMonth string) string {
	return filepath.Join(
		home,
		config.DirReports,
		TitleCase(group),
		TitleCase(kidName),
		strings.TrimSpace(reportYear),
		TitleCase(reportMonth),
	)
}

// ParseTargetPath re-reads group/kid/year/month from a target directory.
// It is the inverse of BuildTargetPath for title-cased inputs.
func ParseTargetPath(home, dir string) (group, kidName, year, month string, err error) {
	rel, err := filepath.Rel(filepath.Join(home, config.DirReports), dir)
	if err != nil {
		return "", "", "", "", err
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 4 {
		return "", "", "", "", fmt.Errorf("unexpected target layout: %s", rel)
	}
	return parts[0], parts[1], parts[2], parts[3], nil
}

// DestFileName maps a known source base name to its destination name,
// substituting kid name, report month and year, and for the protocol sheet
// the numeric age tag. ok is false for unknown files, which are left alone.
// The mapping is deterministic for a given input tuple.
func DestFileName(base, kidName, reportMonth, reportYear string, flags RenameFlags, protokollMonths int) (string, bool) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	kid := TitleCase(kidName)
	month := TitleCase(reportMonth)

	switch {
	case stem == config.KnownNameAllgemein:
		if !flags.Allgemein {
			return "", false
		}
		return fmt.Sprintf(config.FormatDestAllgemein, kid, month, reportYear, ext), true
	case stem == config.KnownNameVorschul:
		if !flags.Vorschul {
			return "", false
		}
		return fmt.Sprintf(config.FormatDestVorschul, kid, month, reportYear, ext), true
	case strings.HasPrefix(stem, config.KnownPrefixProtokoll):
		if !flags.Protokoll {
			return "", false
		}
		return fmt.Sprintf(config.FormatDestProtokoll, kid, protokollMonths, month, reportYear, ext), true
	default:
		return "", false
	}
}

// RenameKnownFiles renames the recognized template files inside targetDir to
// the destination convention. Every per-file failure is recorded in res and
// the remaining files are still processed; nothing aborts the loop.
func (g *Generator) RenameKnownFiles(targetDir, kidName, reportMonth, reportYear string, flags RenameFlags, protokollMonths int, res *RunResult) {
	log := slog.With(config.LogKeyComponent, config.CompFiles)

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		log.Error(config.ErrReadDirFailed, config.LogKeyFile, targetDir, config.LogKeyError, err)
		res.fail(StepRename, newError(KindIOFailure, config.ErrReadDirFailed, err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dest, ok := DestFileName(entry.Name(), kidName, reportMonth, reportYear, flags, protokollMonths)
		if !ok {
			continue
		}
		src := filepath.Join(targetDir, entry.Name())
		dst := filepath.Join(targetDir, dest)
		if src == dst {
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			log.Error(config.ErrRenameFailed,
				config.LogKeySource, src,
				config.LogKeyDest, dst,
				config.LogKeyError, err,
			)
			res.fail(StepRename, newError(KindIOFailure, config.ErrRenameFailed, err))
			continue
		}
		log.Info(config.MsgFileRenamed, config.LogKeySource, entry.Name(), config.LogKeyDest, dest)
		res.ok(StepRename, dest)
	}
}

// SafeCopy copies src to dst without ever silently destroying an existing
// destination: on collision the user is asked, and a confirmed overwrite
// first moves the old file to a timestamp-suffixed .bak.
func (g *Generator) SafeCopy(src, dst string) CopyResult {
	log := slog.With(
		config.LogKeyComponent, config.CompFiles,
		config.LogKeySource, src,
		config.LogKeyDest, dst,
	)

	outcome := Copied
	if _, err := os.Stat(dst); err == nil {
		if g.ConfirmOverwrite == nil || !g.ConfirmOverwrite(dst) {
			log.Info(config.MsgCopySkipped)
			return CopyResult{Source: src, Dest: dst, Outcome: SkippedByUser}
		}
		bak, err := g.backupFile(dst)
		if err != nil {
			log.Error(config.ErrBackupFailed, config.LogKeyError, err)
			return CopyResult{Source: src, Dest: dst, Outcome: CopyFailed,
				Err: newError(KindIOFailure, config.ErrBackupFailed, err)}
		}
		log.Info(config.MsgFileBackedUp, config.LogKeyFile, bak)
		outcome = BackedUpAndCopied
	}

	if err := copyFileContents(src, dst); err != nil {
		log.Error(config.ErrCopyFailed, config.LogKeyError, err)
		return CopyResult{Source: src, Dest: dst, Outcome: CopyFailed,
			Err: newError(KindIOFailure, config.ErrCopyFailed, err)}
	}

	log.Info(config.MsgFileCopied, config.LogKeyOutcome, outcome.String())
	return CopyResult{Source: src, Dest: dst, Outcome: outcome}
}

// backupFile moves path aside as <timestamp>_<name>.bak, suffixing a counter
// if two overwrites land in the same second.
func (g *Generator) backupFile(path string) (string, error) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	stamp := g.Clock.Now().Format(config.TimestampFormat)

	bak := filepath.Join(dir, fmt.Sprintf(config.FormatBackupName, stamp, name))
	for i := 1; ; i++ {
		if _, err := os.Stat(bak); os.IsNotExist(err) {
			break
		}
		bak = filepath.Join(dir, fmt.Sprintf(config.FormatBackupCollide, stamp, name, i))
	}

	if err := os.Rename(path, bak); err != nil {
		return "", err
	}
	return bak, nil
}

// CopyDirectory creates dstDir if absent and applies SafeCopy to every
// regular file in srcDir, non-recursively.
func (g *Generator) CopyDirectory(srcDir, dstDir string) []CopyResult {
	if err := os.MkdirAll(dstDir, config.DirPermDefault); err != nil {
		return []CopyResult{{Source: srcDir, Dest: dstDir, Outcome: CopyFailed,
			Err: newError(KindIOFailure, config.ErrCreateDirFailed, err)}}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return []CopyResult{{Source: srcDir, Dest: dstDir, Outcome: CopyFailed,
			Err: newError(KindIOFailure, config.ErrReadDirFailed, err)}}
	}

	var results []CopyResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())
		results = append(results, g.SafeCopy(src, dst))
	}
	return results
}

// copyFileContents performs a full-overwrite copy of a single file.
func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
