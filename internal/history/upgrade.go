package history

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/placement-prep/internal/model"
)

// document is a stored record before it is decoded into a typed value.
type document map[string]json.RawMessage

// upgradeStep moves a document from version from to from+1.
type upgradeStep struct {
	up          func(document) error
	description string
	from        int
}

// upgrades must stay ordered by from.
var upgrades = []upgradeStep{
	{
		from:        1,
		description: "rename legacy fields (core, general, name/title, plan, readinessScore)",
		up:          upgradeV1,
	},
}

// legacyVersion is assumed for documents without a schemaVersion.
const legacyVersion = 1

func documentVersion(doc document) int {
	raw, ok := doc["schemaVersion"]
	if !ok {
		return legacyVersion
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil || v < legacyVersion {
		return legacyVersion
	}
	return v
}

// upgrade runs every step from the document's version up to
// model.CurrentSchemaVersion. Documents from a newer version are left alone
// and decoded best effort.
func upgrade(doc document) error {
	version := documentVersion(doc)
	for _, step := range upgrades {
		if step.from != version {
			continue
		}
		if err := step.up(doc); err != nil {
			return fmt.Errorf("upgrade from v%d (%s): %w", step.from, step.description, err)
		}
		version++
	}
	if version < model.CurrentSchemaVersion {
		version = model.CurrentSchemaVersion
	}
	doc["schemaVersion"] = mustMarshal(version)
	return nil
}

func upgradeV1(doc document) error {
	if raw, ok := doc["extractedSkills"]; ok {
		var skills document
		if json.Unmarshal(raw, &skills) == nil && skills != nil {
			renameKey(skills, "core", string(model.CategoryCoreCS))
			renameKey(skills, "general", string(model.CategoryOther))
			doc["extractedSkills"] = mustMarshal(skills)
		}
	}

	renameInList(doc, "checklist", "roundTitle", "name", "title")
	renameInList(doc, "roundMapping", "roundTitle", "name", "title")
	renameInList(doc, "roundMapping", "rationale", "whyItMatters")

	renameKey(doc, "plan", "plan7Days")
	renameInList(doc, "plan7Days", "focus", "title")

	renameKey(doc, "readinessScore", "baseScore")
	return nil
}

// renameKey moves from to to. When to is already set, from is left alone so
// the old value is kept as an unknown field.
func renameKey(doc document, from, to string) {
	raw, ok := doc[from]
	if !ok {
		return
	}
	if _, exists := doc[to]; exists {
		return
	}
	doc[to] = raw
	delete(doc, from)
}

// renameInList applies renameKey to every object of the list stored at key,
// trying each legacy name in turn.
func renameInList(doc document, key, to string, from ...string) {
	raw, ok := doc[key]
	if !ok {
		return
	}
	var items []document
	if err := json.Unmarshal(raw, &items); err != nil {
		return
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, name := range from {
			renameKey(item, name, to)
		}
	}
	doc[key] = mustMarshal(items)
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("history: marshal %T: %v", v, err))
	}
	return data
}
