package engine

// Step identifies one stage of the generation pipeline in the run summary.
type Step string

const (
	StepValidate Step = "validate"
	StepLookup   Step = "lookup"
	StepBand     Step = "band"
	StepCopy     Step = "copy"
	StepRename   Step = "rename"
	StepFill     Step = "fill"
)

// StepStatus is the per-entry outcome.
type StepStatus int

const (
	StepOK StepStatus = iota
	StepWarning
	StepSkipped
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepOK:
		return "ok"
	case StepWarning:
		return "warning"
	case StepSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// StepResult is one line of the run summary.
type StepResult struct {
	Step   Step
	Status StepStatus
	Detail string
	Err    error
}

// RunResult accumulates outcomes across the pipeline. It replaces any notion
// of a shared success flag: each stage appends to it and the caller reads the
// final verdict once.
type RunResult struct {
	Steps     []StepResult
	TargetDir string
	Age       *AgeRecord
	Band      *AgeBand

	failed bool
}

// Successful reports whether every mandatory step completed. Warnings and
// user-skipped copies do not count against success.
func (r *RunResult) Successful() bool {
	return !r.failed
}

// Failures returns the subset of steps that failed.
func (r *RunResult) Failures() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			out = append(out, s)
		}
	}
	return out
}

func (r *RunResult) ok(step Step, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepOK, Detail: detail})
}

func (r *RunResult) warn(step Step, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepWarning, Detail: detail})
}

func (r *RunResult) skip(step Step, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepSkipped, Detail: detail})
}

func (r *RunResult) fail(step Step, err error) {
	r.failed = true
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepFailed, Detail: err.Error(), Err: err})
}
