/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"text/template"

	"gopkg.in/yaml.v3"
)

const keyMapExtension = "x-objectstore-keymap"

// document is the subset of an OpenAPI spec the processor reads.
type document struct {
	Components struct {
		Schemas map[string]schema `yaml:"schemas"`
	} `yaml:"components"`
}

type schema struct {
	KeyMap map[string]string `yaml:"x-objectstore-keymap"`
}

// classMapping is one schema's registration to generate.
type classMapping struct {
	Name   string
	KeyMap [][2]string // sorted field/template pairs
}

var fileTemplate = template.Must(template.New("classmap").Parse(`// Code generated by classmap; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/objectops/registry"
)

func init() {
{{- range .Mappings}}
	registry.RegisterKeyMap[{{.Name}}](map[string]string{
	{{- range .KeyMap}}
		{{printf "%q" (index . 0)}}: {{printf "%q" (index . 1)}},
	{{- end}}
	})

	registry.RegisterClass({{printf "%q" .Name}}, func(item map[string]types.AttributeValue) (interface{}, error) {
		var obj {{.Name}}
		err := attributevalue.UnmarshalMap(item, &obj)
		return &obj, err
	})
{{end -}}
}
`))

// Process parses an OpenAPI spec and generates registration code for every
// schema carrying the x-objectstore-keymap vendor extension.
func Process(specData []byte, pkg string) ([]byte, error) {
	var doc document
	if err := yaml.Unmarshal(specData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI spec: %w", err)
	}

	var mappings []classMapping
	for name, s := range doc.Components.Schemas {
		if len(s.KeyMap) == 0 {
			continue
		}

		fields := make([][2]string, 0, len(s.KeyMap))
		for field, tmpl := range s.KeyMap {
			fields = append(fields, [2]string{field, tmpl})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i][0] < fields[j][0] })

		mappings = append(mappings, classMapping{Name: name, KeyMap: fields})
	}

	if len(mappings) == 0 {
		return nil, fmt.Errorf("no schemas with %s extension found", keyMapExtension)
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].Name < mappings[j].Name })

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package  string
		Mappings []classMapping
	}{Package: pkg, Mappings: mappings})
	if err != nil {
		return nil, fmt.Errorf("failed to render registrations: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return formatted, nil
}

// Flags are registered at package init so the classmap command's early
// flag.Parse sees them alongside its own.
var (
	input  = flag.String("input", "", "Path to the OpenAPI spec (YAML)")
	output = flag.String("output", "classmap_gen.go", "Path of the generated Go file")
	pkg    = flag.String("package", "models", "Package name for the generated file")
)

// Main is the processor entry point invoked by the classmap command.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "classmap: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	specData, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classmap: %v\n", err)
		os.Exit(1)
	}

	code, err := Process(specData, *pkg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classmap: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, code, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "classmap: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("classmap: generated %s\n", *output)
}
