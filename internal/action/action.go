// Package action defines the closed set of gated overlay actions and their
// query-parameter encoding. The recognized parameter names are a public
// contract: the login page redirects back with them.
package action

import (
	"encoding/json"
	"net/url"
	"strconv"
)

type Kind string

const (
	AddProject       Kind = "add-project"
	EditProject      Kind = "edit-project"
	DeleteProject    Kind = "delete-project"
	AddExperience    Kind = "add-experience"
	EditExperience   Kind = "edit-experience"
	DeleteExperience Kind = "delete-experience"
)

// Action is one gated overlay dispatch. ID is set for edit and delete.
type Action struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id,omitempty"`
}

func (a Action) NeedsID() bool {
	switch a.Kind {
	case EditProject, DeleteProject, EditExperience, DeleteExperience:
		return true
	}
	return false
}

// tokens maps each recognized query parameter to its action kind, in the
// order the original flow checked them. First match wins.
var tokens = []struct {
	param   string
	kind    Kind
	needsID bool
}{
	{"openAddModal", AddProject, false},
	{"openEditModal", EditProject, true},
	{"openDeleteModal", DeleteProject, true},
	{"openAddExpModal", AddExperience, false},
	{"openEditExpModal", EditExperience, true},
	{"openDeleteExpModal", DeleteExperience, true},
}

// Parse inspects query parameters once and returns the matched action, if
// any. Actions that target an entity also require a parseable integer id.
func Parse(values url.Values) (Action, bool) {
	for _, tok := range tokens {
		if !values.Has(tok.param) {
			continue
		}
		if !tok.needsID {
			return Action{Kind: tok.kind}, true
		}

		id, err := strconv.ParseInt(values.Get("id"), 10, 64)
		if err != nil {
			continue
		}
		return Action{Kind: tok.kind, ID: id}, true
	}
	return Action{}, false
}

// Encode and Decode carry an action through the one-time pending-action key
// across the stripping redirect.

func Encode(a Action) (string, error) {
	raw, err := json.Marshal(a)
	return string(raw), err
}

func Decode(raw string) (Action, error) {
	var a Action
	err := json.Unmarshal([]byte(raw), &a)
	return a, err
}
