// Package testsupport fabricates source CSV fixtures for pipeline tests.
package testsupport
