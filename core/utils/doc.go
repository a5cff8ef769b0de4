// Package utils provides common utility functions for the verdex service.
// It includes helper functions for type conversion of loosely typed sync
// payload values and other shared logic that doesn't fit into
// domain-specific packages.
package utils
