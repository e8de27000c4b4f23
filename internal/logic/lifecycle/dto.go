package lifecycle

// OwnerReference is a controller reference of a cluster object.
type OwnerReference struct {
	Kind string
	Name string
}

// Deployment represents a Kubernetes deployment in the domain layer.
type Deployment struct {
	Name      string
	Namespace string
	// MatchLabels are the selector match-labels; the skip marker is looked up here.
	MatchLabels map[string]string
	// Selector is the full label selector (match-labels and match-expressions)
	// rendered in the API list format.
	Selector string
	// SelectorErr is set when the selector could not be rendered; Selector is empty then.
	SelectorErr error
	Replicas    int32
	Annotations map[string]string
}

// Pod represents a Kubernetes pod in the domain layer.
type Pod struct {
	Name            string
	Namespace       string
	Labels          map[string]string
	OwnerReferences []OwnerReference
}

// ReplicaSet represents a Kubernetes replica set in the domain layer.
type ReplicaSet struct {
	Name            string
	Namespace       string
	OwnerReferences []OwnerReference
}

func firstOwner(refs []OwnerReference, kind string) (string, bool) {
	for i := range refs {
		if refs[i].Kind == kind {
			return refs[i].Name, true
		}
	}

	return "", false
}
