package endpoint

import (
	"sort"
	"strings"

	"github.com/jonwraymond/healthops/group"
	"github.com/jonwraymond/healthops/health"
)

// Response is the JSON body of a group health endpoint.
type Response struct {
	Status      string               `json:"status"`
	Description string               `json:"description,omitempty"`
	Components  map[string]Component `json:"components,omitempty"`
}

// Component is one node in the rendered contributor tree. Composite
// contributors carry their children; leaves carry details when visible.
type Component struct {
	Status     string               `json:"status"`
	Details    map[string]any       `json:"details,omitempty"`
	Error      string               `json:"error,omitempty"`
	Components map[string]Component `json:"components,omitempty"`
}

// componentNode is the intermediate tree for slash-delimited names.
type componentNode struct {
	result   *health.Result
	children map[string]*componentNode
}

// buildResponse renders the aggregate status and, visibility permitting,
// the nested component tree for the given per-contributor results.
func buildResponse(overall health.Status, results map[string]health.Result, grp group.Group, authorized bool) Response {
	response := Response{
		Status:      overall.Code,
		Description: overall.Description,
	}
	if !grp.ShowComponents(authorized) || len(results) == 0 {
		return response
	}

	root := &componentNode{children: make(map[string]*componentNode)}
	for _, name := range sortedNames(results) {
		result := results[name]
		insert(root, strings.Split(name, "/"), &result)
	}

	showDetails := grp.ShowDetails(authorized)
	response.Components = renderChildren(root, grp.StatusAggregator(), showDetails)
	return response
}

func insert(node *componentNode, segments []string, result *health.Result) {
	head := segments[0]
	child, ok := node.children[head]
	if !ok {
		child = &componentNode{children: make(map[string]*componentNode)}
		node.children[head] = child
	}
	if len(segments) == 1 {
		child.result = result
		return
	}
	insert(child, segments[1:], result)
}

// renderChildren converts a node's children to Components, computing each
// composite's status by aggregating its descendants.
func renderChildren(node *componentNode, aggregator health.StatusAggregator, showDetails bool) map[string]Component {
	if len(node.children) == 0 {
		return nil
	}
	components := make(map[string]Component, len(node.children))
	for name, child := range node.children {
		components[name] = render(child, aggregator, showDetails)
	}
	return components
}

func render(node *componentNode, aggregator health.StatusAggregator, showDetails bool) Component {
	component := Component{
		Components: renderChildren(node, aggregator, showDetails),
	}

	component.Status = nodeStatus(node, aggregator).Code

	if node.result != nil && showDetails {
		component.Details = node.result.Details
		if node.result.Err != nil {
			component.Error = node.result.Err.Error()
		}
	}
	return component
}

// nodeStatus is the node's own status for a leaf, or the aggregate of its
// descendants for a composite. A node that is both (a leaf result with
// children) aggregates its own status with its children's.
func nodeStatus(node *componentNode, aggregator health.StatusAggregator) health.Status {
	var statuses []health.Status
	if node.result != nil {
		statuses = append(statuses, node.result.Status)
	}
	for _, name := range sortedChildNames(node) {
		statuses = append(statuses, nodeStatus(node.children[name], aggregator))
	}
	return aggregator.AggregateStatus(statuses...)
}

func sortedNames(results map[string]health.Result) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedChildNames(node *componentNode) []string {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
