package platform

// Package platform contains OS integration glue: base path resolution for
// bundled resources, user directories, and opening folders in the system
// file manager.
