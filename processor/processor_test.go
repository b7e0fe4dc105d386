/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"strings"
	"testing"
)

const sampleSpec = `
openapi: 3.0.0
info:
  title: Scores API
  version: 1.0.0
components:
  schemas:
    GameScore:
      type: object
      x-objectstore-keymap:
        PK: "GAMESCORE#{ObjectID}"
        SK: "GAMESCORE#{ObjectID}"
      properties:
        objectId:
          type: string
        score:
          type: integer
    Player:
      type: object
      x-objectstore-keymap:
        PK: "PLAYER#{ObjectID}"
        SK: "PLAYER#{ObjectID}"
        GSI1PK: "NAME#{Name}"
      properties:
        objectId:
          type: string
    Untracked:
      type: object
      properties:
        id:
          type: string
`

func TestProcess(t *testing.T) {
	code, err := Process([]byte(sampleSpec), "models")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	src := string(code)

	if !strings.Contains(src, "package models") {
		t.Error("Generated code should declare the requested package")
	}
	if !strings.Contains(src, "// Code generated by classmap; DO NOT EDIT.") {
		t.Error("Generated code should carry the generated-code header")
	}
	if !strings.Contains(src, "registry.RegisterKeyMap[GameScore](map[string]string{") {
		t.Error("Generated code should register the GameScore key map")
	}
	if !strings.Contains(src, `"PK": "GAMESCORE#{ObjectID}",`) {
		t.Error("Generated code should carry the key templates")
	}
	if !strings.Contains(src, `registry.RegisterClass("Player", func(item map[string]types.AttributeValue) (interface{}, error) {`) {
		t.Error("Generated code should register the Player unmarshal func")
	}
	if strings.Contains(src, "Untracked") {
		t.Error("Schemas without the keymap extension should be skipped")
	}

	// Deterministic ordering: GameScore before Player
	if strings.Index(src, "GameScore") > strings.Index(src, "Player") {
		t.Error("Generated registrations should be sorted by class name")
	}
}

func TestProcessNoMappings(t *testing.T) {
	spec := `
components:
  schemas:
    Plain:
      type: object
`
	if _, err := Process([]byte(spec), "models"); err == nil {
		t.Error("Expected error when no schema carries the keymap extension")
	}
}

func TestProcessInvalidYAML(t *testing.T) {
	if _, err := Process([]byte("components: [not a map"), "models"); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
