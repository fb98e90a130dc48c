// Package taxonomy holds the reference data the pipeline needs beyond the
// source files themselves: the topic keyword table, member name
// corrections, pseudo-member columns to exclude, and short-name overrides.
//
// Defaults ship embedded in the binary; a deployment can replace them with
// a YAML file via taxonomy.path in the configuration. Topics are a list,
// not a map, because their declaration order is the documented tie-break
// for equal classification scores.
package taxonomy
