// Package yamlplan provides the YAML implementation of repair plan files,
// decoded with gopkg.in/yaml.v3 and translated into the same format-agnostic
// config model as HCL plans.
package yamlplan
