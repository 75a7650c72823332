// Package testutils provides HTTP helpers shared by end-to-end tests that
// drive the full router through an httptest server.
package testutils
