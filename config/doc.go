// Package config loads the robot's YAML configuration file: log settings,
// the control period, the preselected autonomous routine and the modifier
// pipeline of each actuator.
//
// A missing file is not an error; Load returns Default. DefaultYAML holds a
// commented template.
package config
