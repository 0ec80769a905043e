// Package testsupport provides small filesystem helpers shared by tests.
package testsupport
