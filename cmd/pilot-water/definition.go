package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// NetworkDefinition is the YAML ingestion format: a list of component
// definitions followed by a list of connections between them.
type NetworkDefinition struct {
	Components  []ComponentDefinition  `yaml:"components"`
	Connections []ConnectionDefinition `yaml:"connections"`
}

// ComponentDefinition declares one component by id and label.
type ComponentDefinition struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// ConnectionDefinition declares one directed edge.
type ConnectionDefinition struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// LoadDefinition reads a network definition file.
func LoadDefinition(path string) (*NetworkDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network definition %s: %w", path, err)
	}

	var def NetworkDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse network definition %s: %w", path, err)
	}
	return &def, nil
}

// Build populates a network from the definition: components first, then
// connections referencing only defined ids.
func (d *NetworkDefinition) Build(policy network.TypingPolicy) (*network.Network, error) {
	n := network.NewWithPolicy(policy)
	for _, c := range d.Components {
		if _, err := n.AddComponent(c.ID, c.Label); err != nil {
			return nil, err
		}
	}
	for _, conn := range d.Connections {
		if err := n.AddConnection(conn.Source, conn.Target); err != nil {
			return nil, err
		}
	}
	return n, nil
}
