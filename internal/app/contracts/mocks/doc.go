// Package mocks holds testify mocks of the contracts interfaces.
package mocks
