// Package project holds the scaffold configuration assembled from user
// selections, the validation rules for project and folder names, and the
// package/entry-point tables derived from framework and project-type
// choices.
package project
