// pkg/input/mapping.go
package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGUID is the mapping table key used when an attached device's GUID
// has no entry of its own.
const DefaultGUID = "default"

// AxisAssignment names the joystick axis driving a signal. Invert is a
// multiplier applied to the raw axis value, normally 1 or -1, for devices
// whose axis direction is backwards for the signal.
type AxisAssignment struct {
	Axis   *int     `yaml:"axis"`
	Invert *float64 `yaml:"invert"`
	Name   string   `yaml:"name"`
}

// ButtonAssignment names the joystick button driving a signal.
type ButtonAssignment struct {
	Button *int   `yaml:"button"`
	Name   string `yaml:"name"`
}

// DeviceMapping assigns axes and buttons of one device model to the
// game's signals. Pointer fields distinguish a missing entry from a
// legitimate zero index.
type DeviceMapping struct {
	Name   string            `yaml:"name"`
	Paddle *AxisAssignment   `yaml:"paddle"`
	Thrust *AxisAssignment   `yaml:"thrust"`
	Fire   *ButtonAssignment `yaml:"fire"`
}

// MappingTable maps a device GUID to its axis/button assignments, with a
// "default" entry used for devices not listed explicitly.
type MappingTable map[string]DeviceMapping

// ConfigError reports a mapping entry that is missing a field the game
// requires. It is fatal at controller construction so that per-frame
// reads never need to re-check the mapping shape.
type ConfigError struct {
	GUID     string
	Field    string
	Explicit bool
}

func (e *ConfigError) Error() string {
	if e.Explicit {
		return fmt.Sprintf("the joystick with GUID %q has an entry in the controller mapping table but it does not have a %q entry",
			e.GUID, e.Field)
	}
	return fmt.Sprintf("the joystick with GUID %q does not have an entry in the controller mapping table and the %q entry does not have a %q entry",
		e.GUID, DefaultGUID, e.Field)
}

// LoadMappingTable loads a mapping table from a YAML file
func LoadMappingTable(path string) (MappingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping table: %w", err)
	}

	var table MappingTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse mapping table: %w", err)
	}

	return table, nil
}

// SaveMappingTable writes a mapping table to a YAML file
func SaveMappingTable(table MappingTable, path string) error {
	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping table: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping table: %w", err)
	}

	return nil
}

// DefaultMappingTable returns the built-in mapping table with entries for
// the known controller models and the default fallback.
func DefaultMappingTable() MappingTable {
	return MappingTable{
		DefaultGUID: {
			Name:   "default - used when the device GUID is not in this table",
			Paddle: &AxisAssignment{Axis: intPtr(0), Name: "Axis 0"},
			Thrust: &AxisAssignment{Axis: intPtr(1), Invert: floatPtr(-1), Name: "Axis 1"},
			Fire:   &ButtonAssignment{Button: intPtr(0), Name: "Button 0"},
		},
		"0300e6365e0400003c00000001010000": {
			Name:   "Microsoft SideWinder Joystick",
			Paddle: &AxisAssignment{Axis: intPtr(0), Name: "Joystick"},
			Thrust: &AxisAssignment{Axis: intPtr(1), Invert: floatPtr(-1), Name: "Joystick"},
			Fire:   &ButtonAssignment{Button: intPtr(0), Name: "Trigger"},
		},
		"03008fe54c050000cc09000000016800": {
			Name:   "PS4 Controller",
			Paddle: &AxisAssignment{Axis: intPtr(0), Name: "L-Stick"},
			Thrust: &AxisAssignment{Axis: intPtr(1), Invert: floatPtr(-1), Name: "L-Stick"},
			Fire:   &ButtonAssignment{Button: intPtr(0), Name: "Cross button"},
		},
	}
}

// Resolve looks up the mapping for a device GUID, falling back to the
// default entry. The second return value reports whether the GUID matched
// explicitly, which validation errors carry back to the operator.
func (t MappingTable) Resolve(guid string) (DeviceMapping, bool, error) {
	if mapping, ok := t[guid]; ok {
		return mapping, true, nil
	}
	if mapping, ok := t[DefaultGUID]; ok {
		return mapping, false, nil
	}
	return DeviceMapping{}, false, fmt.Errorf(
		"the joystick with GUID %q has no entry in the controller mapping table and the table has no %q entry",
		guid, DefaultGUID)
}

// Validate checks that the mapping carries every field this game reads.
// guid and explicit identify the device and how its mapping was matched,
// so the resulting error names the offending table entry.
func (m DeviceMapping) Validate(guid string, explicit bool) error {
	if m.Paddle == nil {
		return &ConfigError{GUID: guid, Field: "paddle", Explicit: explicit}
	}
	if m.Paddle.Axis == nil {
		return &ConfigError{GUID: guid, Field: "paddle.axis", Explicit: explicit}
	}
	if m.Thrust == nil {
		return &ConfigError{GUID: guid, Field: "thrust", Explicit: explicit}
	}
	if m.Thrust.Axis == nil {
		return &ConfigError{GUID: guid, Field: "thrust.axis", Explicit: explicit}
	}
	if m.Thrust.Invert == nil {
		return &ConfigError{GUID: guid, Field: "thrust.invert", Explicit: explicit}
	}
	if m.Fire == nil {
		return &ConfigError{GUID: guid, Field: "fire", Explicit: explicit}
	}
	if m.Fire.Button == nil {
		return &ConfigError{GUID: guid, Field: "fire.button", Explicit: explicit}
	}
	return nil
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
