package lifecycle

// Action is the outcome recorded for a single resource.
type Action string

const (
	ActionPatched Action = "patched"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Skip reasons reported in ItemOutcome.Reason.
const (
	ReasonPodMarker        = "pod-marker"
	ReasonDeploymentMarker = "deployment-marker"
	ReasonGone             = "gone"
)

// ItemOutcome is what happened to one resource during an operation.
type ItemOutcome struct {
	Kind     string
	Name     string
	Action   Action
	Replicas int32
	Reason   string
	Err      error
}

// Counts aggregates item outcomes by action.
type Counts struct {
	Patched int
	Deleted int
	Skipped int
	Failed  int
}

// Report describes the result of one lifecycle operation.
// Items keep the order in which the targets were listed.
type Report struct {
	Operation Operation
	Namespace string
	Target    string
	Items     []ItemOutcome
}

func newReport(op Operation, namespace, target string) *Report {
	return &Report{
		Operation: op,
		Namespace: namespace,
		Target:    target,
	}
}

// Counts returns the number of items per action.
func (r *Report) Counts() Counts {
	var c Counts

	for i := range r.Items {
		switch r.Items[i].Action {
		case ActionPatched:
			c.Patched++
		case ActionDeleted:
			c.Deleted++
		case ActionSkipped:
			c.Skipped++
		case ActionFailed:
			c.Failed++
		}
	}

	return c
}

// Failed returns the failed items in report order.
func (r *Report) Failed() []ItemOutcome {
	var failed []ItemOutcome

	for i := range r.Items {
		if r.Items[i].Action == ActionFailed {
			failed = append(failed, r.Items[i])
		}
	}

	return failed
}
