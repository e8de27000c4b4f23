package lifecycle

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	"sigs.k8s.io/yaml"
)

// replicaSource tells where a recorded replica count came from.
type replicaSource string

const (
	replicaSourceAnnotation replicaSource = "annotation"
	replicaSourceMissing    replicaSource = "missing"
	replicaSourceMalformed  replicaSource = "malformed"
	replicaSourceUnset      replicaSource = "unset"
)

// recordedReplicas is the replica count recovered from the last-applied
// configuration. Value is 0 unless Source is replicaSourceAnnotation.
type recordedReplicas struct {
	Value  int32
	Source replicaSource
	Err    error
}

func (r recordedReplicas) defaulted() bool {
	return r.Source != replicaSourceAnnotation
}

// recoverRecordedReplicas reads spec.replicas from the last-applied configuration
// annotation. The annotation reflects the last applied manifest, which may differ
// from the replica count that was running before a stop.
func recoverRecordedReplicas(annotations map[string]string) recordedReplicas {
	raw, ok := annotations[LastAppliedConfigAnnotation]
	if !ok || strings.TrimSpace(raw) == "" {
		return recordedReplicas{Source: replicaSourceMissing}
	}

	var lastApplied appsv1.Deployment
	if err := yaml.Unmarshal([]byte(raw), &lastApplied); err != nil {
		return recordedReplicas{
			Source: replicaSourceMalformed,
			Err:    fmt.Errorf("parse %s: %w", LastAppliedConfigAnnotation, err),
		}
	}

	if lastApplied.Spec.Replicas == nil {
		return recordedReplicas{Source: replicaSourceUnset}
	}

	if *lastApplied.Spec.Replicas < 0 {
		return recordedReplicas{
			Source: replicaSourceMalformed,
			Err:    fmt.Errorf("negative spec.replicas %d", *lastApplied.Spec.Replicas),
		}
	}

	return recordedReplicas{
		Value:  *lastApplied.Spec.Replicas,
		Source: replicaSourceAnnotation,
	}
}
