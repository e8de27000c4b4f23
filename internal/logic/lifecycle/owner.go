package lifecycle

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ownerVerdict is the result of resolving whether a pod may be restarted.
type ownerVerdict string

const (
	verdictPodMarker         ownerVerdict = ReasonPodMarker
	verdictDeploymentMarker  ownerVerdict = ReasonDeploymentMarker
	verdictNoReplicaSetOwner ownerVerdict = "no-replicaset-owner"
	verdictNoDeploymentOwner ownerVerdict = "no-deployment-owner"
	verdictOwnerUnmarked     ownerVerdict = "owner-unmarked"
	// verdictOwnerNotFound and verdictOwnerLookupFailed fail open: the pod is restarted.
	verdictOwnerNotFound     ownerVerdict = "owner-not-found"
	verdictOwnerLookupFailed ownerVerdict = "owner-lookup-failed"
)

type ownerResolution struct {
	Verdict    ownerVerdict
	ReplicaSet string
	Deployment string
	Err        error
}

func (r ownerResolution) skip() bool {
	return r.Verdict == verdictPodMarker || r.Verdict == verdictDeploymentMarker
}

// ownerResolver walks pod -> ReplicaSet -> Deployment for a single operation call.
// Verdicts are memoized per ReplicaSet and concurrent lookups of the same
// ReplicaSet are collapsed. A resolver must not outlive the call that created it.
type ownerResolver struct {
	logger    *slog.Logger
	repo      Repository
	namespace string

	group        singleflight.Group
	mu           sync.Mutex
	byReplicaSet map[string]ownerResolution
}

func newOwnerResolver(logger *slog.Logger, repo Repository, namespace string) *ownerResolver {
	return &ownerResolver{
		logger:       logger,
		repo:         repo,
		namespace:    namespace,
		byReplicaSet: make(map[string]ownerResolution),
	}
}

func (r *ownerResolver) resolve(ctx context.Context, pod Pod) ownerResolution {
	if hasSkipMarker(pod.Labels) {
		return ownerResolution{Verdict: verdictPodMarker}
	}

	rsName, ok := firstOwner(pod.OwnerReferences, KindReplicaSet)
	if !ok {
		return ownerResolution{Verdict: verdictNoReplicaSetOwner}
	}

	if cached, ok := r.cached(rsName); ok {
		return cached
	}

	v, _, _ := r.group.Do(rsName, func() (any, error) {
		if cached, ok := r.cached(rsName); ok {
			return cached, nil
		}

		res := r.walk(ctx, rsName)

		if res.Verdict != verdictOwnerLookupFailed {
			r.mu.Lock()
			r.byReplicaSet[rsName] = res
			r.mu.Unlock()
		}

		return res, nil
	})

	res, _ := v.(ownerResolution)

	return res
}

func (r *ownerResolver) cached(rsName string) (ownerResolution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byReplicaSet[rsName]

	return res, ok
}

func (r *ownerResolver) walk(ctx context.Context, rsName string) ownerResolution {
	logger := r.logger.With("namespace", r.namespace, "replicaSet", rsName)

	rs, err := r.repo.GetReplicaSetQuery(ctx, r.namespace, rsName)
	if err != nil {
		return r.lookupFailed(ctx, logger, ownerResolution{ReplicaSet: rsName, Err: err})
	}

	depName, ok := firstOwner(rs.OwnerReferences, KindDeployment)
	if !ok {
		return ownerResolution{Verdict: verdictNoDeploymentOwner, ReplicaSet: rsName}
	}

	dep, err := r.repo.GetDeploymentQuery(ctx, r.namespace, depName)
	if err != nil {
		return r.lookupFailed(ctx, logger.With("deployment", depName), ownerResolution{
			ReplicaSet: rsName,
			Deployment: depName,
			Err:        err,
		})
	}

	if hasSkipMarker(dep.MatchLabels) {
		return ownerResolution{Verdict: verdictDeploymentMarker, ReplicaSet: rsName, Deployment: depName}
	}

	return ownerResolution{Verdict: verdictOwnerUnmarked, ReplicaSet: rsName, Deployment: depName}
}

func (r *ownerResolver) lookupFailed(
	ctx context.Context,
	logger *slog.Logger,
	res ownerResolution,
) ownerResolution {
	if isNotFound(res.Err) {
		res.Verdict = verdictOwnerNotFound
		logger.InfoContext(ctx, "owner not found, proceeding with restart")

		return res
	}

	res.Verdict = verdictOwnerLookupFailed
	logger.WarnContext(ctx, "owner lookup failed, proceeding with restart", "reason", res.Err)

	return res
}
