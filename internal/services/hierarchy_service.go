package services

import (
	"fmt"

	"github.com/terraincognita07/constancia/internal/models"
)

// HierarchyService maintains the leader/member edges with a request→approval
// workflow. The graph is expected to stay acyclic; RequestJoin refuses
// requests that would close a cycle, and the traversal keeps a visited set
// anyway in case older documents carry one.
type HierarchyService struct {
	document *models.Document
}

func NewHierarchyService(document *models.Document) *HierarchyService {
	return &HierarchyService{document: document}
}

// RequestJoin records that member wants to join leader's team. Requesting
// again while already pending is a no-op, not a duplicate.
func (service *HierarchyService) RequestJoin(memberName string, leaderName string) error {
	member, exists := service.document.Users[memberName]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, memberName)
	}
	leader, exists := service.document.Users[leaderName]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, leaderName)
	}

	if memberName == leaderName {
		return fmt.Errorf("%w: cannot join own team", ErrInvalidState)
	}
	if member.HasLeader() {
		return fmt.Errorf("%w: %q already has a leader", ErrInvalidState, memberName)
	}
	if !leader.IsLeader() {
		return fmt.Errorf("%w: %q is not a leader", ErrInvalidState, leaderName)
	}
	if service.isTransitiveLeader(memberName, leaderName) {
		return fmt.Errorf("%w: joining %q would create a cycle", ErrInvalidState, leaderName)
	}

	if leader.HasPendingRequest(memberName) {
		return nil
	}
	leader.PendingRequests = append(leader.PendingRequests, memberName)
	return nil
}

// Approve links member under leader. The three sub-steps (member set, leader
// pointer, pending removal) happen together on the in-memory document, and
// the caller persists the document in one write, so no intermediate state is
// ever observable.
func (service *HierarchyService) Approve(leaderName string, memberName string) error {
	leader, exists := service.document.Users[leaderName]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, leaderName)
	}
	member, exists := service.document.Users[memberName]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, memberName)
	}
	if !leader.HasPendingRequest(memberName) {
		return fmt.Errorf("%w: no pending request from %q", ErrNotFound, memberName)
	}
	if member.HasLeader() {
		return fmt.Errorf("%w: %q already has a leader", ErrInvalidState, memberName)
	}

	if !leader.HasMember(memberName) {
		leader.Members = append(leader.Members, memberName)
	}
	member.Leader = leaderName
	leader.PendingRequests = removePendingRequest(leader.PendingRequests, memberName)
	return nil
}

// WalkSubtree visits the team rooted at root depth-first, reporting each
// user with its depth (root = 0). The visit callback returns false to stop
// early. Users already visited are skipped, which bounds the walk even on a
// document whose edges somehow form a cycle.
func (service *HierarchyService) WalkSubtree(rootName string, visit func(name string, user *models.User, depth int) bool) error {
	root, exists := service.document.Users[rootName]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, rootName)
	}

	visited := map[string]struct{}{}
	service.walk(rootName, root, 0, visited, visit)
	return nil
}

func (service *HierarchyService) walk(name string, user *models.User, depth int, visited map[string]struct{}, visit func(string, *models.User, int) bool) bool {
	if _, seen := visited[name]; seen {
		return true
	}
	visited[name] = struct{}{}

	if !visit(name, user, depth) {
		return false
	}
	for _, memberName := range user.Members {
		member, exists := service.document.Users[memberName]
		if !exists {
			continue
		}
		if !service.walk(memberName, member, depth+1, visited, visit) {
			return false
		}
	}
	return true
}

// SubtreeNode is one flattened row of a team walk, for display.
type SubtreeNode struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Depth int    `json:"depth"`
}

func (service *HierarchyService) Subtree(rootName string) ([]SubtreeNode, error) {
	nodes := []SubtreeNode{}
	err := service.WalkSubtree(rootName, func(name string, user *models.User, depth int) bool {
		nodes = append(nodes, SubtreeNode{Name: name, Role: user.Role, Depth: depth})
		return true
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// isTransitiveLeader reports whether candidate sits somewhere in the leader
// chain above, or at, the given user-to-be-leader. Used to refuse join
// requests that would close a cycle.
func (service *HierarchyService) isTransitiveLeader(candidateName string, startName string) bool {
	visited := map[string]struct{}{}
	for cursor := startName; cursor != ""; {
		if cursor == candidateName {
			return true
		}
		if _, seen := visited[cursor]; seen {
			return false
		}
		visited[cursor] = struct{}{}

		user, exists := service.document.Users[cursor]
		if !exists {
			return false
		}
		cursor = user.Leader
	}
	return false
}

func removePendingRequest(pending []string, memberName string) []string {
	filtered := make([]string, 0, len(pending))
	for _, name := range pending {
		if name != memberName {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
