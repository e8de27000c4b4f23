package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/validation"
)

const (
	entrySeparator = ";"
	fieldSeparator = "|"
	fieldCount     = 3
)

// Action is what a job does to its target.
type Action string

const (
	ActionStop    Action = "stop"
	ActionStart   Action = "start"
	ActionRestart Action = "restart"
)

// TargetKind is the resource level a job acts on.
type TargetKind string

const (
	TargetNamespace  TargetKind = "namespace"
	TargetDeployment TargetKind = "deployment"
	TargetPod        TargetKind = "pod"
)

// Target addresses a namespace, or a deployment or pod inside it.
type Target struct {
	Kind      TargetKind
	Namespace string
	Name      string
}

func (t Target) String() string {
	if t.Kind == TargetNamespace {
		return "namespace/" + t.Namespace
	}

	return "namespace/" + t.Namespace + "/" + string(t.Kind) + "/" + t.Name
}

// Job is one scheduled lifecycle action.
type Job struct {
	Spec   string
	Action Action
	Target Target
}

func (j Job) String() string {
	return string(j.Action) + " " + j.Target.String()
}

// ParseJobs parses entries of the form `<cron>|<action>|<target>` separated by `;`.
// Every entry is validated, including its cron expression in the given zone.
// Blank entries are ignored.
func ParseJobs(raw string, parser cronParser, tz string) ([]Job, error) {
	var (
		jobs []Job
		errs []error
	)

	now := time.Now()

	for i, entry := range strings.Split(raw, entrySeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		job, err := parseJob(entry)
		if err == nil {
			_, err = parser.NextAfter(job.Spec, tz, now)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
			}
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("schedule entry %d %q: %w", i+1, entry, err))

			continue
		}

		jobs = append(jobs, job)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return jobs, nil
}

func parseJob(entry string) (Job, error) {
	fields := strings.Split(entry, fieldSeparator)
	if len(fields) != fieldCount {
		return Job{}, fmt.Errorf("%w: want <cron>|<action>|<target>", ErrInvalidSchedule)
	}

	spec := strings.TrimSpace(fields[0])
	if spec == "" {
		return Job{}, fmt.Errorf("%w: empty cron expression", ErrInvalidSchedule)
	}

	action, err := parseAction(strings.TrimSpace(fields[1]))
	if err != nil {
		return Job{}, err
	}

	target, err := parseTarget(strings.TrimSpace(fields[2]))
	if err != nil {
		return Job{}, err
	}

	if target.Kind == TargetPod && action != ActionRestart {
		return Job{}, fmt.Errorf("%w: pods can only be restarted", ErrInvalidAction)
	}

	return Job{Spec: spec, Action: action, Target: target}, nil
}

func parseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(s)); a {
	case ActionStop, ActionStart, ActionRestart:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

func parseTarget(s string) (Target, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if parts[0] != string(TargetNamespace) || (len(parts) != 2 && len(parts) != 4) {
		return Target{}, fmt.Errorf(
			"%w: %q, want namespace/<ns>[/deployment/<name>|/pod/<name>]", ErrInvalidTarget, s,
		)
	}

	if msgs := validation.IsDNS1123Label(parts[1]); len(msgs) > 0 {
		return Target{}, fmt.Errorf("%w: namespace %q: %s", ErrInvalidTarget, parts[1], strings.Join(msgs, "; "))
	}

	if len(parts) == 2 {
		return Target{Kind: TargetNamespace, Namespace: parts[1]}, nil
	}

	kind := TargetKind(parts[2])
	if kind != TargetDeployment && kind != TargetPod {
		return Target{}, fmt.Errorf("%w: unknown resource %q", ErrInvalidTarget, parts[2])
	}

	if msgs := validation.IsDNS1123Subdomain(parts[3]); len(msgs) > 0 {
		return Target{}, fmt.Errorf("%w: %s %q: %s", ErrInvalidTarget, kind, parts[3], strings.Join(msgs, "; "))
	}

	return Target{Kind: kind, Namespace: parts[1], Name: parts[3]}, nil
}
